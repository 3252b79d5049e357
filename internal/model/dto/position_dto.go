package dto

// ========== Position 相关 DTO ==========

// PositionData 职位数据
type PositionData struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// PositionListResponse 职位列表响应
type PositionListResponse struct {
	PositionList []PositionData `json:"positionList"`
}
