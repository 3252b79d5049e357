package model

// CandidateStatus 候选人状态枚举
type CandidateStatus string

const (
	CandidateStatusNew      CandidateStatus = "new"      // 新投递
	CandidateStatusSelected CandidateStatus = "selected" // 已录用
	CandidateStatusRejected CandidateStatus = "rejected" // 已淘汰
)

// ValidCandidateStatus 判断是否是合法的候选人状态
func ValidCandidateStatus(s string) bool {
	switch CandidateStatus(s) {
	case CandidateStatusNew, CandidateStatusSelected, CandidateStatusRejected:
		return true
	}
	return false
}

// Candidate 候选人模型

type Candidate struct {
	BaseModel
	PublicID    int64           `gorm:"uniqueIndex;not null" json:"public_id"`
	FullName    string          `gorm:"type:varchar(128);not null" json:"full_name"`
	Email       string          `gorm:"type:varchar(255);not null;index" json:"email"`
	PhoneNumber string          `gorm:"type:varchar(32);not null" json:"phone_number"`
	Position    string          `gorm:"type:varchar(128);not null" json:"position"`
	Experience  string          `gorm:"type:varchar(64);not null;default:''" json:"experience"`
	Status      CandidateStatus `gorm:"type:varchar(16);not null;default:'new';index:idx_candidates_status" json:"status"`
	ResumePath  string          `gorm:"type:varchar(512);not null;default:''" json:"-"` // 简历存储路径，通过下载接口暴露
	ResumeName  string          `gorm:"type:varchar(255);not null;default:''" json:"-"`
	IsDeleted   bool            `gorm:"not null;default:false;index" json:"is_deleted"`
}

// TableName 指定表名
func (Candidate) TableName() string {
	return "candidates"
}
