package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"HRDesk/config"
	"HRDesk/internal/model"
	"HRDesk/internal/model/dto"
	pkgerrors "HRDesk/pkg/errors"
	"HRDesk/pkg/form"
	"HRDesk/pkg/listfilter"
	"HRDesk/pkg/logger"
	"HRDesk/pkg/snowflake"
	"HRDesk/storage/database"
	"HRDesk/utils"
)

var (
	candidateService *CandidateService
	candidateOnce    sync.Once
)

func Candidate() *CandidateService {
	candidateOnce.Do(func() {
		candidateService = &CandidateService{}
	})
	return candidateService
}

type CandidateService struct{}

// 新增候选人的表单规则，必填检查排在格式检查前
var addCandidateRules = []form.Rule{
	{Field: "full_name", Kind: form.Name},
	{Field: "email", Kind: form.Email},
	{Field: "phone_number", Kind: form.Phone},
	{Field: "position", Kind: form.Required},
	{Field: "experience", Kind: form.Required},
	{Field: "resume", Kind: form.File},
	{Field: "declaration", Kind: form.Declaration},
}

// 自由文本搜索覆盖的字段
var candidateSearchFields = []string{"full_name", "email", "phone_number", "position"}

func candidateField(c model.Candidate, field string) string {
	switch field {
	case "full_name":
		return c.FullName
	case "email":
		return c.Email
	case "phone_number":
		return c.PhoneNumber
	case "position":
		return c.Position
	case "status":
		return string(c.Status)
	default:
		return ""
	}
}

// List 候选人列表：全量取未删除记录，内存里跑过滤管道再分页。
// 过滤每次都从完整列表重算，放宽条件后记录才能回来。
func (s *CandidateService) List(ctx context.Context, req *dto.ListRequest) (*dto.CandidateListResponse, error) {
	db := database.DB()

	var candidates []model.Candidate
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("id").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}

	filtered := listfilter.Apply(candidates, listfilter.Query{
		Text:         req.Filter.Search,
		SearchFields: candidateSearchFields,
		Selections:   req.Filter.Selections,
	}, candidateField)

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = config.Cfg.ListPageSize
	}
	pageNum := req.PageNum
	if pageNum <= 0 {
		pageNum = 1
	}

	page := listfilter.Paginate(filtered, pageNum, pageSize)

	list := make([]dto.CandidateData, 0, len(page))
	for _, c := range page {
		list = append(list, toCandidateData(c))
	}

	return &dto.CandidateListResponse{
		CandidateList: list,
		Meta: dto.ListMeta{
			PageNum:  pageNum,
			PageSize: pageSize,
			Total:    int64(len(filtered)),
		},
	}, nil
}

// Add 新增候选人，multipart 表单加简历附件
func (s *CandidateService) Add(ctx context.Context, req *dto.AddCandidateRequest, file *multipart.FileHeader) (*dto.CandidateData, error) {
	values := form.Values{
		Fields: map[string]string{
			"full_name":    req.FullName,
			"email":        req.Email,
			"phone_number": req.PhoneNumber,
			"position":     req.Position,
			"experience":   req.Experience,
		},
		HasFile: file != nil,
		Checked: req.Declaration == "true",
	}
	if err := form.Check(addCandidateRules, values); err != nil {
		return nil, pkgerrors.Validation(err)
	}

	if file.Size > config.Cfg.AttachmentMaxBytes {
		return nil, pkgerrors.AttachmentTooBig
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate public id: %w", err)
	}

	resumePath, err := saveAttachment(file, fmt.Sprintf("resume_%d", publicID))
	if err != nil {
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}

	candidate := model.Candidate{
		PublicID:    publicID,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
		Experience:  req.Experience,
		Status:      model.CandidateStatusNew,
		ResumePath:  resumePath,
		ResumeName:  file.Filename,
	}

	db := database.DB()
	if err := db.WithContext(ctx).Create(&candidate).Error; err != nil {
		// 落库失败时清掉已写入的附件，避免孤儿文件
		os.Remove(resumePath)
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	logger.Logger.Info("Candidate created",
		zap.Int64("public_id", candidate.PublicID),
		zap.String("position", candidate.Position),
	)

	data := toCandidateData(candidate)
	return &data, nil
}

// Update 更新候选人状态或删除标记
func (s *CandidateService) Update(ctx context.Context, candidateID string, req *dto.UpdateCandidateRequest) (*dto.CandidateData, error) {
	candidate, err := s.getByPublicID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Status != nil {
		if !model.ValidCandidateStatus(*req.Status) {
			return nil, pkgerrors.StatusInvalid
		}
		updates["status"] = *req.Status
	}
	if req.IsDeleted != nil {
		updates["is_deleted"] = *req.IsDeleted
	}

	if len(updates) == 0 {
		data := toCandidateData(*candidate)
		return &data, nil
	}

	db := database.DB()
	err = db.WithContext(ctx).
		Model(candidate).
		Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	// 录用即转为员工档案
	if req.Status != nil && *req.Status == string(model.CandidateStatusSelected) {
		if _, err := Employee().Promote(ctx, candidate); err != nil {
			logger.Logger.Warn("Failed to promote candidate to employee",
				zap.Int64("public_id", candidate.PublicID),
				zap.Error(err),
			)
		}
	}

	logger.Logger.Info("Candidate updated",
		zap.Int64("public_id", candidate.PublicID),
		zap.Any("updates", updates),
	)

	data := toCandidateData(*candidate)
	return &data, nil
}

// Resume 返回简历文件路径和派生的下载文件名
func (s *CandidateService) Resume(ctx context.Context, candidateID string) (path, downloadName string, err error) {
	candidate, err := s.getByPublicID(ctx, candidateID)
	if err != nil {
		return "", "", err
	}

	if candidate.ResumePath == "" {
		return "", "", pkgerrors.ResumeMissing
	}

	if _, err := os.Stat(candidate.ResumePath); err != nil {
		return "", "", pkgerrors.ResumeMissing
	}

	return candidate.ResumePath, utils.ResumeFileName(candidate.FullName), nil
}

func (s *CandidateService) getByPublicID(ctx context.Context, candidateID string) (*model.Candidate, error) {
	idInt, err := strconv.ParseInt(candidateID, 10, 64)
	if err != nil {
		return nil, pkgerrors.CandidateNotFound
	}

	db := database.DB()

	var candidate model.Candidate
	err = db.WithContext(ctx).Where("public_id = ?", idInt).First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.CandidateNotFound
		}
		return nil, fmt.Errorf("failed to query candidate: %w", err)
	}

	return &candidate, nil
}

func toCandidateData(c model.Candidate) dto.CandidateData {
	id := strconv.FormatInt(c.PublicID, 10)

	resumeURL := ""
	if c.ResumePath != "" {
		resumeURL = "/candidate/" + id + "/resume"
	}

	return dto.CandidateData{
		ID:          id,
		FullName:    c.FullName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Position:    Position().Title(c.Position),
		Experience:  c.Experience,
		Status:      string(c.Status),
		IsDeleted:   c.IsDeleted,
		ResumeURL:   resumeURL,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

// saveAttachment 把 multipart 附件写到附件目录，返回落盘路径
func saveAttachment(file *multipart.FileHeader, baseName string) (string, error) {
	dir := config.Cfg.AttachmentDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	path := filepath.Join(dir, baseName+ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}
