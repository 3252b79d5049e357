package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HRDesk/internal/service"
	"HRDesk/pkg/response"
)

// ListPositions 职位目录
// GET /position/list
func ListPositions(ctx context.Context, c *app.RequestContext) {
	response.Success(ctx, c, service.Position().List())
}
