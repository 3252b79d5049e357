package handler

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"

	"HRDesk/internal/middleware"
	"HRDesk/internal/model/dto"
	"HRDesk/internal/service"
	"HRDesk/pkg/response"
)

// SignUp HR 注册
// POST /hr/signup
func SignUp(ctx context.Context, c *app.RequestContext) {
	var req dto.SignUpRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().SignUp(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SignIn HR 登录
// POST /hr/signin
func SignIn(ctx context.Context, c *app.RequestContext) {
	var req dto.SignInRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().SignIn(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// RefreshToken 刷新访问令牌
// POST /hr/token/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().RefreshToken(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SignOut 登出，废弃 refresh token
// POST /hr/signout
func SignOut(ctx context.Context, c *app.RequestContext) {
	accountID, ok := middleware.GetAccountID(ctx, c)
	if !ok {
		response.Error(ctx, c, fmt.Errorf("account ID not found in context"))
		return
	}

	if err := service.Auth().SignOut(ctx, accountID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
