package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

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
	attendanceService *AttendanceService
	attendanceOnce    sync.Once
)

func Attendance() *AttendanceService {
	attendanceOnce.Do(func() {
		attendanceService = &AttendanceService{}
	})
	return attendanceService
}

type AttendanceService struct{}

var attendanceSearchFields = []string{"employee_name", "position", "department", "task"}

type attendanceRow struct {
	record   model.AttendanceRecord
	employee model.Employee
}

func attendanceRowField(r attendanceRow, field string) string {
	switch field {
	case "employee_name":
		return r.employee.FullName
	case "position":
		return r.employee.Position
	case "department":
		return r.employee.Department
	case "task":
		return r.record.Task
	case "status":
		return string(r.record.Status)
	case "date":
		return r.record.Date.Format(utils.DateLayout)
	default:
		return ""
	}
}

// List 出勤列表，预加载员工后在内存里跑过滤管道
func (s *AttendanceService) List(ctx context.Context, req *dto.ListRequest) (*dto.AttendanceListResponse, error) {
	db := database.DB()

	var records []model.AttendanceRecord
	err := db.WithContext(ctx).
		Preload("Employee").
		Order("date DESC, id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	rows := make([]attendanceRow, 0, len(records))
	for _, r := range records {
		row := attendanceRow{record: r}
		if r.Employee != nil {
			row.employee = *r.Employee
		}
		rows = append(rows, row)
	}

	filtered := listfilter.Apply(rows, listfilter.Query{
		Text:         req.Filter.Search,
		SearchFields: attendanceSearchFields,
		Selections:   req.Filter.Selections,
	}, attendanceRowField)

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = config.Cfg.ListPageSize
	}
	pageNum := req.PageNum
	if pageNum <= 0 {
		pageNum = 1
	}

	page := listfilter.Paginate(filtered, pageNum, pageSize)

	list := make([]dto.AttendanceData, 0, len(page))
	for _, r := range page {
		list = append(list, toAttendanceData(r))
	}

	return &dto.AttendanceListResponse{
		AttendanceList: list,
		Meta: dto.ListMeta{
			PageNum:  pageNum,
			PageSize: pageSize,
			Total:    int64(len(filtered)),
		},
	}, nil
}

// Mark 标记某员工某天的出勤，同一天重复标记按 upsert 处理
func (s *AttendanceService) Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (*dto.AttendanceData, error) {
	if !model.ValidAttendanceStatus(req.Status) {
		return nil, pkgerrors.StatusInvalid
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, pkgerrors.Validation(fmt.Errorf("date must be YYYY-MM-DD"))
	}

	employee, err := Employee().GetByPublicID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pkgerrors.EmployeeNotFound) {
			return nil, pkgerrors.EmployeeUnknown
		}
		return nil, err
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate public id: %w", err)
	}

	record := model.AttendanceRecord{
		PublicID:   publicID,
		EmployeeID: employee.ID,
		Date:       date,
		Status:     model.AttendanceStatus(req.Status),
		Task:       req.Task,
	}

	db := database.DB()
	err = db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "task", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to mark attendance: %w", err)
	}

	logger.Logger.Info("Attendance marked",
		zap.Int64("employee_id", employee.PublicID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	data := toAttendanceData(attendanceRow{record: record, employee: *employee})
	return &data, nil
}

// Update 更新出勤记录的状态或任务说明
func (s *AttendanceService) Update(ctx context.Context, recordID string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceData, error) {
	idInt, err := strconv.ParseInt(recordID, 10, 64)
	if err != nil {
		return nil, pkgerrors.AttendanceNotFound
	}

	db := database.DB()

	var record model.AttendanceRecord
	err = db.WithContext(ctx).
		Preload("Employee").
		Where("public_id = ?", idInt).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.AttendanceNotFound
		}
		return nil, fmt.Errorf("failed to query attendance record: %w", err)
	}

	updates := map[string]interface{}{}

	if req.Status != nil {
		if !model.ValidAttendanceStatus(*req.Status) {
			return nil, pkgerrors.StatusInvalid
		}
		updates["status"] = *req.Status
	}
	if req.Task != nil {
		updates["task"] = *req.Task
	}

	if len(updates) > 0 {
		err = db.WithContext(ctx).
			Model(&record).
			Updates(updates).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update attendance record: %w", err)
		}
	}

	row := attendanceRow{record: record}
	if record.Employee != nil {
		row.employee = *record.Employee
	}
	data := toAttendanceData(row)
	return &data, nil
}

func toAttendanceData(r attendanceRow) dto.AttendanceData {
	return dto.AttendanceData{
		ID:           strconv.FormatInt(r.record.PublicID, 10),
		EmployeeID:   strconv.FormatInt(r.employee.PublicID, 10),
		EmployeeName: r.employee.FullName,
		Position:     Position().Title(r.employee.Position),
		Department:   r.employee.Department,
		Date:         r.record.Date.Format(utils.DateLayout),
		Status:       string(r.record.Status),
		Task:         r.record.Task,
	}
}
