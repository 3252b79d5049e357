package model

// HRAccount HR 管理员账号

type HRAccount struct {
	BaseModel
	PublicID      int64  `gorm:"uniqueIndex;not null" json:"public_id"`
	FullName      string `gorm:"type:varchar(128);not null" json:"full_name"`
	Email         string `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"`
	PasswordHash  string `gorm:"type:varchar(128);not null" json:"-"` // bcrypt 散列，不对外暴露
	EmailVerified bool   `gorm:"not null;default:false" json:"email_verified"`
}

// TableName 指定表名
func (HRAccount) TableName() string {
	return "hr_accounts"
}
