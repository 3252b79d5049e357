package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HRDesk/internal/model/dto"
	"HRDesk/internal/service"
	"HRDesk/pkg/response"
)

// ListEmployees 员工列表
// POST /employee/list
func ListEmployees(ctx context.Context, c *app.RequestContext) {
	var req dto.ListRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Employee().List(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpdateEmployee 更新员工字段或删除标记
// POST /employee/:id/update
func UpdateEmployee(ctx context.Context, c *app.RequestContext) {
	employeeID := c.Param("id")

	var req dto.UpdateEmployeeRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Employee().Update(ctx, employeeID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// SearchEmployees 员工姓名自动补全
// POST /employee/search
func SearchEmployees(ctx context.Context, c *app.RequestContext) {
	var req dto.EmployeeSearchRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Employee().Search(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
