package service

import (
	"sync"

	"HRDesk/internal/model/dto"
)

var (
	positionService *PositionService
	positionOnce    sync.Once
)

func Position() *PositionService {
	positionOnce.Do(func() {
		positionService = &PositionService{}
	})
	return positionService
}

// PositionService 职位目录，候选人/员工表单的下拉选项来源
type PositionService struct{}

var positionCatalog = []dto.PositionData{
	{Code: "frontend_dev", Title: "Frontend Developer"},
	{Code: "backend_dev", Title: "Backend Developer"},
	{Code: "fullstack_dev", Title: "Full Stack Developer"},
	{Code: "qa_engineer", Title: "QA Engineer"},
	{Code: "ui_ux_designer", Title: "UI/UX Designer"},
	{Code: "hr_executive", Title: "Human Resource Executive"},
	{Code: "product_manager", Title: "Product Manager"},
	{Code: "devops_engineer", Title: "DevOps Engineer"},
}

// List 返回全部职位
func (s *PositionService) List() *dto.PositionListResponse {
	return &dto.PositionListResponse{PositionList: positionCatalog}
}

// Title 按 code 取职位名，未知 code 回退为 "N/A" 而不是报错
func (s *PositionService) Title(code string) string {
	for _, p := range positionCatalog {
		if p.Code == code {
			return p.Title
		}
	}
	return "N/A"
}
