package dto

// ========== Candidate 相关 DTO ==========

// CandidateData 候选人数据
type CandidateData struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Position    string `json:"position"`
	Experience  string `json:"experience"`
	Status      string `json:"status"`
	IsDeleted   bool   `json:"is_deleted"`
	ResumeURL   string `json:"resume_url"`
	CreatedAt   string `json:"created_at"`
}

// CandidateListResponse 候选人列表响应
type CandidateListResponse struct {
	CandidateList []CandidateData `json:"candidateList"`
	Meta          ListMeta        `json:"meta"`
}

// AddCandidateRequest 新增候选人请求（multipart 表单字段）
type AddCandidateRequest struct {
	FullName    string `form:"full_name"`
	Email       string `form:"email"`
	PhoneNumber string `form:"phone_number"`
	Position    string `form:"position"`
	Experience  string `form:"experience"`
	Declaration string `form:"declaration"` // "true" 表示已勾选声明
}

// UpdateCandidateRequest 候选人更新请求，状态和删除标记二选一或同传
type UpdateCandidateRequest struct {
	Status    *string `json:"status,omitempty"`
	IsDeleted *bool   `json:"is_deleted,omitempty"`
}
