package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"HRDesk/internal/model"
	"HRDesk/storage/database"
)

// ========== HRAccount 相关查询接口 ==========

// HRAccountQuerier HR 账号查询接口
type HRAccountQuerier interface {
	// GetByEmail 根据邮箱查询账号
	//
	// SELECT * FROM @@table WHERE email = @email LIMIT 1
	GetByEmail(email string) (*gen.T, error)

	// GetByPublicID 根据 PublicID 查询账号（API 中 accountID 是 public_id）
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)
}

// ========== Candidate 相关查询接口 ==========

// CandidateQuerier 候选人查询接口
type CandidateQuerier interface {
	// GetByPublicID 根据 PublicID 查询候选人
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// ListActive 查询未删除的候选人，按创建顺序
	//
	// SELECT * FROM @@table
	// WHERE is_deleted = false
	// ORDER BY id
	ListActive() ([]*gen.T, error)

	// CountByStatus 统计各状态候选人数量
	//
	// SELECT status, COUNT(*) as count
	// FROM @@table
	// WHERE is_deleted = false
	// GROUP BY status
	CountByStatus() ([]gen.M, error)
}

// ========== Employee 相关查询接口 ==========

// EmployeeQuerier 员工查询接口
type EmployeeQuerier interface {
	// GetByPublicID 根据 PublicID 查询员工
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// SearchByName 按姓名模糊匹配员工（考勤录入联想用）
	//
	// SELECT * FROM @@table
	// WHERE full_name ILIKE @pattern
	// ORDER BY full_name
	// LIMIT @limit
	SearchByName(pattern string, limit int) ([]*gen.T, error)

	// CountByDepartment 统计各部门员工数量
	//
	// SELECT department, COUNT(*) as count
	// FROM @@table
	// GROUP BY department
	CountByDepartment() ([]gen.M, error)
}

// ========== AttendanceRecord 相关查询接口 ==========

// AttendanceQuerier 考勤记录查询接口
type AttendanceQuerier interface {
	// GetByEmployeeAndDate 查询某员工某天的考勤（每人每天唯一）
	//
	// SELECT * FROM @@table
	// WHERE employee_id = @employeeID AND date = @date::date
	// LIMIT 1
	GetByEmployeeAndDate(employeeID int64, date string) (*gen.T, error)

	// ListByDateRange 按日期范围查询考勤记录
	//
	// SELECT * FROM @@table
	// WHERE date >= @fromDate::date AND date <= @toDate::date
	// ORDER BY date DESC, id
	ListByDateRange(fromDate, toDate string) ([]*gen.T, error)
}

// ========== LeaveRequest 相关查询接口 ==========

// LeaveQuerier 请假申请查询接口
type LeaveQuerier interface {
	// GetByPublicID 根据 PublicID 查询请假申请
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// ListByMonth 查询某月内的请假申请（日历构建用）
	//
	// SELECT * FROM @@table
	// WHERE date >= @monthStart::date AND date < @monthEnd::date
	// ORDER BY id
	ListByMonth(monthStart, monthEnd string) ([]*gen.T, error)

	// ListPending 查询待审批的请假申请（每日摘要用）
	//
	// SELECT * FROM @@table
	// WHERE status = 'pending'
	// ORDER BY date, id
	ListPending() ([]*gen.T, error)
}

func Generate() error {
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.DB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query", // 生成代码的输出路径
		ModelPkgPath:      "HRDesk/internal/model",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	// 注册现有的 model，GORM Gen 会使用这些 model 而不是生成新的
	g.ApplyBasic(
		&model.HRAccount{},
		&model.Candidate{},
		&model.Employee{},
		&model.AttendanceRecord{},
		&model.LeaveRequest{},
	)

	g.ApplyInterface(func(HRAccountQuerier) {}, &model.HRAccount{})
	g.ApplyInterface(func(CandidateQuerier) {}, &model.Candidate{})
	g.ApplyInterface(func(EmployeeQuerier) {}, &model.Employee{})
	g.ApplyInterface(func(AttendanceQuerier) {}, &model.AttendanceRecord{})
	g.ApplyInterface(func(LeaveQuerier) {}, &model.LeaveRequest{})

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
