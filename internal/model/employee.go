package model

import "time"

// EmploymentType 雇佣类型枚举
// 字段名沿用既有库表中的拼写 employement_type
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
	EmploymentContract EmploymentType = "contract"
	EmploymentIntern   EmploymentType = "intern"
)

// ValidEmploymentType 判断是否是合法的雇佣类型
func ValidEmploymentType(s string) bool {
	switch EmploymentType(s) {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern:
		return true
	}
	return false
}

// Employee 员工模型

type Employee struct {
	BaseModel
	PublicID       int64          `gorm:"uniqueIndex;not null" json:"public_id"`
	FullName       string         `gorm:"type:varchar(128);not null" json:"full_name"`
	Email          string         `gorm:"type:varchar(255);not null;index" json:"email"`
	PhoneNumber    string         `gorm:"type:varchar(32);not null" json:"phone_number"`
	Position       string         `gorm:"type:varchar(128);not null" json:"position"`
	Department     string         `gorm:"type:varchar(128);not null;default:''" json:"department"`
	EmploymentType EmploymentType `gorm:"column:employement_type;type:varchar(16);not null;default:'full_time'" json:"employement_type"`
	DateOfJoining  time.Time      `gorm:"type:date;not null" json:"date_of_joining"`
	IsDeleted      bool           `gorm:"not null;default:false;index" json:"is_deleted"`
}

// TableName 指定表名
func (Employee) TableName() string {
	return "employees"
}
