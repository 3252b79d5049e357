package model

import "time"

// LeaveStatus 请假审批状态枚举
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// ValidLeaveStatus 判断是否是合法的请假状态
func ValidLeaveStatus(s string) bool {
	switch LeaveStatus(s) {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}

// LeaveType 请假类型枚举
type LeaveType string

const (
	LeaveTypeCasual  LeaveType = "casual_leave"
	LeaveTypeSick    LeaveType = "sick_leave"
	LeaveTypeEarned  LeaveType = "earned_leave"
	LeaveTypeUnpaid  LeaveType = "unpaid_leave"
)

// ValidLeaveType 判断是否是合法的请假类型
func ValidLeaveType(s string) bool {
	switch LeaveType(s) {
	case LeaveTypeCasual, LeaveTypeSick, LeaveTypeEarned, LeaveTypeUnpaid:
		return true
	}
	return false
}

// LeaveRequest 请假申请

type LeaveRequest struct {
	BaseModel
	PublicID     int64       `gorm:"uniqueIndex;not null" json:"public_id"`
	EmployeeID   int64       `gorm:"not null;index" json:"employee_id"`
	LeaveType    LeaveType   `gorm:"type:varchar(16);not null" json:"leave_type"`
	Date         time.Time   `gorm:"type:date;not null;index" json:"date"`
	Reason       string      `gorm:"type:varchar(512);not null;default:''" json:"reason"`
	Designation  string      `gorm:"type:varchar(128);not null;default:''" json:"designation"`
	Status       LeaveStatus `gorm:"type:varchar(16);not null;default:'pending';index:idx_leaves_status" json:"status"`
	DocumentPath string      `gorm:"type:varchar(512);not null;default:''" json:"-"` // 证明材料存储路径

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName 指定表名
func (LeaveRequest) TableName() string {
	return "leave_requests"
}
