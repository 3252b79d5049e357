package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HRDesk/internal/model/dto"
	"HRDesk/internal/service"
	"HRDesk/pkg/response"
)

// ListAttendance 出勤列表
// POST /attendance/list
func ListAttendance(ctx context.Context, c *app.RequestContext) {
	var req dto.ListRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Attendance().List(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// MarkAttendance 标记出勤，同员工同日重复标记会覆盖
// POST /attendance/mark
func MarkAttendance(ctx context.Context, c *app.RequestContext) {
	var req dto.MarkAttendanceRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Attendance().Mark(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpdateAttendance 更新出勤记录
// POST /attendance/:id/update
func UpdateAttendance(ctx context.Context, c *app.RequestContext) {
	recordID := c.Param("id")

	var req dto.UpdateAttendanceRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Attendance().Update(ctx, recordID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
