package dto

// ========== Attendance 相关 DTO ==========

// AttendanceData 出勤记录数据
type AttendanceData struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Position     string `json:"position"`
	Department   string `json:"department"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Task         string `json:"task"`
}

// AttendanceListResponse 出勤列表响应
type AttendanceListResponse struct {
	AttendanceList []AttendanceData `json:"attendanceList"`
	Meta           ListMeta         `json:"meta"`
}

// MarkAttendanceRequest 标记出勤请求，date 为 YYYY-MM-DD
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required"`
	Task       string `json:"task"`
}

// UpdateAttendanceRequest 出勤更新请求
type UpdateAttendanceRequest struct {
	Status *string `json:"status,omitempty"`
	Task   *string `json:"task,omitempty"`
}
