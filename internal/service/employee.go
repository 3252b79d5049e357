package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"HRDesk/config"
	"HRDesk/internal/model"
	"HRDesk/internal/model/dto"
	pkgerrors "HRDesk/pkg/errors"
	"HRDesk/pkg/listfilter"
	"HRDesk/pkg/logger"
	"HRDesk/pkg/snowflake"
	"HRDesk/storage/database"
	"HRDesk/utils"
)

var (
	employeeService *EmployeeService
	employeeOnce    sync.Once
)

func Employee() *EmployeeService {
	employeeOnce.Do(func() {
		employeeService = &EmployeeService{}
	})
	return employeeService
}

type EmployeeService struct{}

var employeeSearchFields = []string{"full_name", "email", "phone_number", "position", "department"}

func employeeField(e model.Employee, field string) string {
	switch field {
	case "full_name":
		return e.FullName
	case "email":
		return e.Email
	case "phone_number":
		return e.PhoneNumber
	case "position":
		return e.Position
	case "department":
		return e.Department
	case "employement_type":
		return string(e.EmploymentType)
	default:
		return ""
	}
}

// List 员工列表，过滤管道加分页，逻辑同候选人列表
func (s *EmployeeService) List(ctx context.Context, req *dto.ListRequest) (*dto.EmployeeListResponse, error) {
	db := database.DB()

	var employees []model.Employee
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("id").
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}

	filtered := listfilter.Apply(employees, listfilter.Query{
		Text:         req.Filter.Search,
		SearchFields: employeeSearchFields,
		Selections:   req.Filter.Selections,
	}, employeeField)

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = config.Cfg.ListPageSize
	}
	pageNum := req.PageNum
	if pageNum <= 0 {
		pageNum = 1
	}

	page := listfilter.Paginate(filtered, pageNum, pageSize)

	list := make([]dto.EmployeeData, 0, len(page))
	for _, e := range page {
		list = append(list, toEmployeeData(e))
	}

	return &dto.EmployeeListResponse{
		EmployeeList: list,
		Meta: dto.ListMeta{
			PageNum:  pageNum,
			PageSize: pageSize,
			Total:    int64(len(filtered)),
		},
	}, nil
}

// Promote 把已录用的候选人转为员工
func (s *EmployeeService) Promote(ctx context.Context, candidate *model.Candidate) (*model.Employee, error) {
	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate public id: %w", err)
	}

	employee := model.Employee{
		PublicID:       publicID,
		FullName:       candidate.FullName,
		Email:          candidate.Email,
		PhoneNumber:    candidate.PhoneNumber,
		Position:       candidate.Position,
		EmploymentType: model.EmploymentFullTime,
		DateOfJoining:  utils.DayStart(time.Now()),
	}

	db := database.DB()
	if err := db.WithContext(ctx).Create(&employee).Error; err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	logger.Logger.Info("Candidate promoted to employee",
		zap.Int64("candidate_id", candidate.PublicID),
		zap.Int64("employee_id", employee.PublicID),
	)

	return &employee, nil
}

// Update 更新员工字段或删除标记
func (s *EmployeeService) Update(ctx context.Context, employeeID string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeData, error) {
	employee, err := s.GetByPublicID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.EmploymentType != nil {
		if !model.ValidEmploymentType(*req.EmploymentType) {
			return nil, pkgerrors.StatusInvalid
		}
		updates["employement_type"] = *req.EmploymentType
	}
	if req.DateOfJoining != nil {
		date, err := utils.ParseDate(*req.DateOfJoining)
		if err != nil {
			return nil, pkgerrors.Validation(fmt.Errorf("date_of_joining must be YYYY-MM-DD"))
		}
		updates["date_of_joining"] = date
	}
	if req.IsDeleted != nil {
		updates["is_deleted"] = *req.IsDeleted
	}

	if len(updates) == 0 {
		data := toEmployeeData(*employee)
		return &data, nil
	}

	db := database.DB()
	err = db.WithContext(ctx).
		Model(employee).
		Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	logger.Logger.Info("Employee updated",
		zap.Int64("public_id", employee.PublicID),
		zap.Any("updates", updates),
	)

	data := toEmployeeData(*employee)
	return &data, nil
}

// Search 姓名前缀/子串自动补全，考勤标记表单用
func (s *EmployeeService) Search(ctx context.Context, req *dto.EmployeeSearchRequest) ([]dto.EmployeeSuggestion, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return []dto.EmployeeSuggestion{}, nil
	}

	limit := req.Limit
	if limit <= 0 || limit > 20 {
		limit = 10
	}

	db := database.DB()

	var employees []model.Employee
	err := db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Where("full_name ILIKE ?", "%"+query+"%").
		Order("full_name").
		Limit(limit).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	suggestions := make([]dto.EmployeeSuggestion, 0, len(employees))
	for _, e := range employees {
		suggestions = append(suggestions, dto.EmployeeSuggestion{
			ID:       strconv.FormatInt(e.PublicID, 10),
			FullName: e.FullName,
			Position: Position().Title(e.Position),
		})
	}

	return suggestions, nil
}

// GetByPublicID 按 public_id 取员工
func (s *EmployeeService) GetByPublicID(ctx context.Context, employeeID string) (*model.Employee, error) {
	idInt, err := strconv.ParseInt(employeeID, 10, 64)
	if err != nil {
		return nil, pkgerrors.EmployeeNotFound
	}

	db := database.DB()

	var employee model.Employee
	err = db.WithContext(ctx).Where("public_id = ?", idInt).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.EmployeeNotFound
		}
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}

	return &employee, nil
}

func toEmployeeData(e model.Employee) dto.EmployeeData {
	return dto.EmployeeData{
		ID:             strconv.FormatInt(e.PublicID, 10),
		FullName:       e.FullName,
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		Position:       Position().Title(e.Position),
		Department:     e.Department,
		EmploymentType: string(e.EmploymentType),
		DateOfJoining:  e.DateOfJoining.Format(utils.DateLayout),
		IsDeleted:      e.IsDeleted,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}
