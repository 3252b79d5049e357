package middleware

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/csrf"
	"github.com/hertz-contrib/sessions"
	"github.com/hertz-contrib/sessions/cookie"

	"HRDesk/config"
)

// RegisterCSRF 注册会话和 CSRF 防护。
// 纯 Bearer 客户端默认不开，浏览器带 cookie 的部署再打开。
func RegisterCSRF(h *server.Hertz) {
	store := cookie.NewStore([]byte(config.Cfg.SessionSecret))
	h.Use(sessions.New("hrdesk-session", store))
	h.Use(csrf.New(
		csrf.WithSecret(config.Cfg.CSRFSecret),
		csrf.WithErrorFunc(func(ctx context.Context, c *app.RequestContext) {
			c.JSON(http.StatusForbidden, map[string]interface{}{
				"error": map[string]interface{}{
					"code":    "CSRF_TOKEN_INVALID",
					"message": "CSRF token missing or invalid",
				},
			})
			c.Abort()
		}),
	))
}
