package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HRDesk/internal/model/dto"
	"HRDesk/internal/service"
	"HRDesk/pkg/response"
)

// ListCandidates 候选人列表
// POST /candidate/list
func ListCandidates(ctx context.Context, c *app.RequestContext) {
	var req dto.ListRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Candidate().List(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// AddCandidate 新增候选人（multipart，含简历附件）
// POST /candidate/add-candidate
func AddCandidate(ctx context.Context, c *app.RequestContext) {
	var req dto.AddCandidateRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	// 附件缺失交给表单闸门统一报错
	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	result, err := service.Candidate().Add(ctx, &req, file)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// UpdateCandidate 更新候选人状态或删除标记
// POST /candidate/:id/update
func UpdateCandidate(ctx context.Context, c *app.RequestContext) {
	candidateID := c.Param("id")

	var req dto.UpdateCandidateRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Candidate().Update(ctx, candidateID, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// DownloadResume 下载简历，文件名由候选人姓名派生
// GET /candidate/:id/resume
func DownloadResume(ctx context.Context, c *app.RequestContext) {
	candidateID := c.Param("id")

	path, downloadName, err := service.Candidate().Resume(ctx, candidateID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+downloadName+`"`)
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
