package dto

// ========== Employee 相关 DTO ==========

// EmployeeData 员工数据
// employement_type 沿用既有库表的拼写
type EmployeeData struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phone_number"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	EmploymentType string `json:"employement_type"`
	DateOfJoining  string `json:"date_of_joining"`
	IsDeleted      bool   `json:"is_deleted"`
	CreatedAt      string `json:"created_at"`
}

// EmployeeListResponse 员工列表响应
type EmployeeListResponse struct {
	EmployeeList []EmployeeData `json:"employeeList"`
	Meta         ListMeta       `json:"meta"`
}

// UpdateEmployeeRequest 员工更新请求，任一字段为空则不更新
type UpdateEmployeeRequest struct {
	FullName       *string `json:"full_name,omitempty"`
	Email          *string `json:"email,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	Position       *string `json:"position,omitempty"`
	Department     *string `json:"department,omitempty"`
	EmploymentType *string `json:"employement_type,omitempty"`
	DateOfJoining  *string `json:"date_of_joining,omitempty"`
	IsDeleted      *bool   `json:"is_deleted,omitempty"`
}

// EmployeeSearchRequest 员工姓名自动补全请求
type EmployeeSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// EmployeeSuggestion 员工姓名补全建议
type EmployeeSuggestion struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
}
