package model

import "time"

// AttendanceStatus 出勤状态枚举
type AttendanceStatus string

const (
	AttendancePresent      AttendanceStatus = "present"
	AttendanceAbsent       AttendanceStatus = "absent"
	AttendanceMedicalLeave AttendanceStatus = "medical_leave"
	AttendanceWFH          AttendanceStatus = "work_from_home"
)

// ValidAttendanceStatus 判断是否是合法的出勤状态
func ValidAttendanceStatus(s string) bool {
	switch AttendanceStatus(s) {
	case AttendancePresent, AttendanceAbsent, AttendanceMedicalLeave, AttendanceWFH:
		return true
	}
	return false
}

// AttendanceRecord 出勤记录，每个员工每天至多一条

type AttendanceRecord struct {
	BaseModel
	PublicID   int64            `gorm:"uniqueIndex;not null" json:"public_id"`
	EmployeeID int64            `gorm:"not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date       time.Time        `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	Status     AttendanceStatus `gorm:"type:varchar(16);not null" json:"status"`
	Task       string           `gorm:"type:varchar(255);not null;default:''" json:"task"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName 指定表名
func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
