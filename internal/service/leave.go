package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"HRDesk/config"
	"HRDesk/internal/cache"
	"HRDesk/internal/model"
	"HRDesk/internal/model/dto"
	"HRDesk/internal/queue"
	"HRDesk/pkg/calendar"
	pkgerrors "HRDesk/pkg/errors"
	"HRDesk/pkg/form"
	"HRDesk/pkg/listfilter"
	"HRDesk/pkg/logger"
	"HRDesk/pkg/snowflake"
	"HRDesk/storage/database"
	"HRDesk/utils"
)

var (
	leaveService *LeaveService
	leaveOnce    sync.Once
)

func Leave() *LeaveService {
	leaveOnce.Do(func() {
		leaveService = &LeaveService{}
	})
	return leaveService
}

type LeaveService struct{}

var addLeaveRules = []form.Rule{
	{Field: "employee_id", Kind: form.Required},
	{Field: "leave_type", Kind: form.Required},
	{Field: "date", Kind: form.Required},
	{Field: "reason", Kind: form.Required},
	{Field: "designation", Kind: form.Required},
}

var leaveSearchFields = []string{"employee_name", "designation", "reason"}

type leaveRow struct {
	leave    model.LeaveRequest
	employee model.Employee
}

func leaveRowField(r leaveRow, field string) string {
	switch field {
	case "employee_name":
		return r.employee.FullName
	case "designation":
		return r.leave.Designation
	case "reason":
		return r.leave.Reason
	case "status":
		return string(r.leave.Status)
	case "leave_type":
		return string(r.leave.LeaveType)
	default:
		return ""
	}
}

// List 请假列表，过滤管道加分页
func (s *LeaveService) List(ctx context.Context, req *dto.ListRequest) (*dto.LeaveListResponse, error) {
	db := database.DB()

	var leaves []model.LeaveRequest
	err := db.WithContext(ctx).
		Preload("Employee").
		Order("date DESC, id").
		Find(&leaves).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}

	rows := make([]leaveRow, 0, len(leaves))
	for _, l := range leaves {
		row := leaveRow{leave: l}
		if l.Employee != nil {
			row.employee = *l.Employee
		}
		rows = append(rows, row)
	}

	filtered := listfilter.Apply(rows, listfilter.Query{
		Text:         req.Filter.Search,
		SearchFields: leaveSearchFields,
		Selections:   req.Filter.Selections,
	}, leaveRowField)

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = config.Cfg.ListPageSize
	}
	pageNum := req.PageNum
	if pageNum <= 0 {
		pageNum = 1
	}

	page := listfilter.Paginate(filtered, pageNum, pageSize)

	list := make([]dto.LeaveData, 0, len(page))
	for _, r := range page {
		list = append(list, toLeaveData(r))
	}

	return &dto.LeaveListResponse{
		LeaveList: list,
		Meta: dto.ListMeta{
			PageNum:  pageNum,
			PageSize: pageSize,
			Total:    int64(len(filtered)),
		},
	}, nil
}

// Add 新增请假申请，multipart 表单可附证明材料
func (s *LeaveService) Add(ctx context.Context, req *dto.AddLeaveRequest, file *multipart.FileHeader) (*dto.LeaveData, error) {
	values := form.Values{
		Fields: map[string]string{
			"employee_id": req.EmployeeID,
			"leave_type":  req.LeaveType,
			"date":        req.Date,
			"reason":      req.Reason,
			"designation": req.Designation,
		},
		HasFile: file != nil,
	}
	if err := form.Check(addLeaveRules, values); err != nil {
		return nil, pkgerrors.Validation(err)
	}

	if !model.ValidLeaveType(req.LeaveType) {
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

	// 证明材料可不附，没有附件时 DocumentPath 留空
	if file != nil && file.Size > config.Cfg.AttachmentMaxBytes {
		return nil, pkgerrors.AttachmentTooBig
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate public id: %w", err)
	}

	var documentPath string
	if file != nil {
		documentPath, err = saveAttachment(file, fmt.Sprintf("leave_%d", publicID))
		if err != nil {
			return nil, fmt.Errorf("failed to save leave document: %w", err)
		}
	}

	leave := model.LeaveRequest{
		PublicID:     publicID,
		EmployeeID:   employee.ID,
		LeaveType:    model.LeaveType(req.LeaveType),
		Date:         date,
		Reason:       req.Reason,
		Designation:  req.Designation,
		Status:       model.LeaveStatusPending,
		DocumentPath: documentPath,
	}

	db := database.DB()
	if err := db.WithContext(ctx).Create(&leave).Error; err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}

	s.invalidateCalendarFor(ctx, date)

	logger.Logger.Info("Leave request created",
		zap.Int64("public_id", leave.PublicID),
		zap.Int64("employee_id", employee.PublicID),
		zap.String("date", req.Date),
	)

	data := toLeaveData(leaveRow{leave: leave, employee: *employee})
	return &data, nil
}

// UpdateStatus 审批请假，approved/rejected 会触发邮件通知
func (s *LeaveService) UpdateStatus(ctx context.Context, leaveID string, req *dto.UpdateLeaveRequest) (*dto.LeaveData, error) {
	if !model.ValidLeaveStatus(req.Status) {
		return nil, pkgerrors.StatusInvalid
	}

	idInt, err := strconv.ParseInt(leaveID, 10, 64)
	if err != nil {
		return nil, pkgerrors.LeaveNotFound
	}

	db := database.DB()

	var leave model.LeaveRequest
	err = db.WithContext(ctx).
		Preload("Employee").
		Where("public_id = ?", idInt).
		First(&leave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.LeaveNotFound
		}
		return nil, fmt.Errorf("failed to query leave request: %w", err)
	}

	err = db.WithContext(ctx).
		Model(&leave).
		Update("status", req.Status).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update leave status: %w", err)
	}

	s.invalidateCalendarFor(ctx, leave.Date)

	if req.Status != string(model.LeaveStatusPending) && leave.Employee != nil {
		notifyErr := queue.PublishLeaveNotify(model.LeaveNotifyMessage{
			LeaveID:      leave.PublicID,
			EmployeeName: leave.Employee.FullName,
			Email:        leave.Employee.Email,
			LeaveType:    string(leave.LeaveType),
			Status:       req.Status,
		})
		if notifyErr != nil {
			// 通知投递失败不回滚审批结果
			logger.Logger.Warn("Failed to enqueue leave notification",
				zap.Int64("leave_id", leave.PublicID),
				zap.Error(notifyErr),
			)
		}
	}

	logger.Logger.Info("Leave status updated",
		zap.Int64("public_id", leave.PublicID),
		zap.String("status", req.Status),
	)

	row := leaveRow{leave: leave}
	if leave.Employee != nil {
		row.employee = *leave.Employee
	}
	data := toLeaveData(row)
	return &data, nil
}

// Calendar 构建 (month, year) 的 42 格请假日历。
// month 越界时先归一化，等价于跨年翻页；结果按月缓存，写操作会使缓存失效。
func (s *LeaveService) Calendar(ctx context.Context, req *dto.CalendarRequest) (*dto.CalendarResponse, error) {
	cursor := calendar.Normalize(req.Month, req.Year)

	if cached, err := cache.GetCalendar(ctx, cursor.Month, cursor.Year); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		logger.Logger.Warn("Calendar cache read failed",
			zap.Int("month", cursor.Month),
			zap.Int("year", cursor.Year),
			zap.Error(err),
		)
	}

	now := time.Now()
	cells := calendar.BuildMonthGrid(cursor.Month, cursor.Year, now)

	monthStart := time.Date(cursor.Year, time.Month(cursor.Month+1), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	db := database.DB()

	var leaves []model.LeaveRequest
	err := db.WithContext(ctx).
		Preload("Employee").
		Where("date >= ? AND date < ?", monthStart, monthEnd).
		Order("date, id").
		Find(&leaves).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves for calendar: %w", err)
	}

	events := make(map[string][]calendar.Event)
	approved := make([]dto.CalendarEventData, 0)
	for _, l := range leaves {
		name, role := "", ""
		if l.Employee != nil {
			name = l.Employee.FullName
			role = Position().Title(l.Employee.Position)
		}
		key := calendar.DateKey(l.Date)
		ev := calendar.Event{
			ID:          strconv.FormatInt(l.PublicID, 10),
			SubjectName: name,
			SubjectRole: role,
			DateKey:     key,
			Category:    string(l.LeaveType),
			Note:        l.Reason,
			Status:      string(l.Status),
		}
		events[key] = append(events[key], ev)

		// 侧栏只列已批准的，查询已按日期排好
		if l.Status == model.LeaveStatusApproved {
			approved = append(approved, toCalendarEventData(ev))
		}
	}

	calendar.Merge(cells, events)

	resp := &dto.CalendarResponse{
		Month:        cursor.Month,
		Year:         cursor.Year,
		Cells:        toCalendarCells(cells),
		ApprovedList: approved,
	}

	if err := cache.SetCalendar(ctx, cursor.Month, cursor.Year, resp); err != nil {
		logger.Logger.Warn("Calendar cache write failed",
			zap.Int("month", cursor.Month),
			zap.Int("year", cursor.Year),
			zap.Error(err),
		)
	}

	return resp, nil
}

// PendingDigest 汇总某天所有待审批请假，scheduler 每日投递
func (s *LeaveService) PendingDigest(ctx context.Context, date time.Time) (*model.LeaveDigestMessage, error) {
	db := database.DB()

	var leaves []model.LeaveRequest
	err := db.WithContext(ctx).
		Preload("Employee").
		Where("status = ?", model.LeaveStatusPending).
		Order("date, id").
		Find(&leaves).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query pending leaves: %w", err)
	}

	lines := make([]string, 0, len(leaves))
	for _, l := range leaves {
		name := "unknown"
		if l.Employee != nil {
			name = l.Employee.FullName
		}
		lines = append(lines, fmt.Sprintf("%s - %s on %s: %s",
			name, l.LeaveType, l.Date.Format(utils.DateLayout), l.Reason))
	}

	return &model.LeaveDigestMessage{
		Date:         date.Format(utils.DateLayout),
		PendingCount: len(leaves),
		Lines:        lines,
	}, nil
}

// Document 返回请假证明材料的存储路径与下载文件名
func (s *LeaveService) Document(ctx context.Context, leaveID string) (path, downloadName string, err error) {
	idInt, err := strconv.ParseInt(leaveID, 10, 64)
	if err != nil {
		return "", "", pkgerrors.LeaveNotFound
	}

	db := database.DB()

	var leave model.LeaveRequest
	err = db.WithContext(ctx).
		Preload("Employee").
		Where("public_id = ?", idInt).
		First(&leave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", pkgerrors.LeaveNotFound
		}
		return "", "", fmt.Errorf("failed to query leave request: %w", err)
	}

	if leave.DocumentPath == "" {
		return "", "", pkgerrors.DocumentMissing
	}

	if _, err := os.Stat(leave.DocumentPath); err != nil {
		return "", "", pkgerrors.DocumentMissing
	}

	name := "document"
	if leave.Employee != nil && leave.Employee.FullName != "" {
		name = leave.Employee.FullName
	}
	downloadName = fmt.Sprintf("%s_%s_Document%s",
		utils.SanitizeFileName(name),
		leave.Date.Format(utils.DateLayout),
		filepath.Ext(leave.DocumentPath),
	)

	return leave.DocumentPath, downloadName, nil
}

func (s *LeaveService) invalidateCalendarFor(ctx context.Context, date time.Time) {
	month := int(date.Month()) - 1
	if err := cache.InvalidateCalendar(ctx, month, date.Year()); err != nil {
		logger.Logger.Warn("Failed to invalidate calendar cache",
			zap.Int("month", month),
			zap.Int("year", date.Year()),
			zap.Error(err),
		)
	}
}

func toLeaveData(r leaveRow) dto.LeaveData {
	id := strconv.FormatInt(r.leave.PublicID, 10)

	documentURL := ""
	if r.leave.DocumentPath != "" {
		documentURL = "/leave/" + id + "/document"
	}

	return dto.LeaveData{
		ID:           id,
		EmployeeID:   strconv.FormatInt(r.employee.PublicID, 10),
		EmployeeName: r.employee.FullName,
		Designation:  r.leave.Designation,
		LeaveType:    string(r.leave.LeaveType),
		Date:         r.leave.Date.Format(utils.DateLayout),
		Reason:       r.leave.Reason,
		Status:       string(r.leave.Status),
		DocumentURL:  documentURL,
	}
}

func toCalendarEventData(e calendar.Event) dto.CalendarEventData {
	return dto.CalendarEventData{
		ID:          e.ID,
		SubjectName: e.SubjectName,
		SubjectRole: e.SubjectRole,
		DateKey:     e.DateKey,
		Category:    e.Category,
		Note:        e.Note,
		Status:      e.Status,
	}
}

func toCalendarCells(cells []calendar.Cell) []dto.CalendarCellData {
	out := make([]dto.CalendarCellData, 0, len(cells))
	for _, c := range cells {
		events := make([]dto.CalendarEventData, 0, len(c.Events))
		for _, e := range c.Events {
			events = append(events, toCalendarEventData(e))
		}
		out = append(out, dto.CalendarCellData{
			DateKey:        c.DateKey,
			DayOfMonth:     c.DayOfMonth,
			IsCurrentMonth: c.IsCurrentMonth,
			IsToday:        c.IsToday,
			Events:         events,
		})
	}
	return out
}
