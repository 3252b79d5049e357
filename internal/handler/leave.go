package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HRDesk/internal/model/dto"
	"HRDesk/internal/service"
	"HRDesk/pkg/response"
)

// ListLeaves 请假列表
// POST /leave/list
func ListLeaves(ctx context.Context, c *app.RequestContext) {
	var req dto.ListRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Leave().List(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// AddLeave 新增请假申请（multipart，证明材料可选）
// POST /leave/add-leave
func AddLeave(ctx context.Context, c *app.RequestContext) {
	var req dto.AddLeaveRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	file, err := c.FormFile("document")
	if err != nil {
		file = nil
	}

	result, err := service.Leave().Add(ctx, &req, file)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpdateLeave 审批请假
// POST /leave/:id/update
func UpdateLeave(ctx context.Context, c *app.RequestContext) {
	leaveID := c.Param("id")

	var req dto.UpdateLeaveRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Leave().UpdateStatus(ctx, leaveID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// DownloadLeaveDocument 下载请假证明材料
// GET /leave/:id/document
func DownloadLeaveDocument(ctx context.Context, c *app.RequestContext) {
	leaveID := c.Param("id")

	path, downloadName, err := service.Leave().Document(ctx, leaveID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+downloadName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.File(path)
}

// LeaveCalendar 请假月历，42 格固定网格
// POST /leave/calendar
func LeaveCalendar(ctx context.Context, c *app.RequestContext) {
	var req dto.CalendarRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Leave().Calendar(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
