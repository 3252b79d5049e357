package dto

// ========== Leave 相关 DTO ==========

// LeaveData 请假记录数据
type LeaveData struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Designation  string `json:"designation"`
	LeaveType    string `json:"leave_type"`
	Date         string `json:"date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	DocumentURL  string `json:"document_url"`
}

// LeaveListResponse 请假列表响应
type LeaveListResponse struct {
	LeaveList []LeaveData `json:"leaveList"`
	Meta      ListMeta    `json:"meta"`
}

// AddLeaveRequest 新增请假请求（multipart 表单字段），date 为 YYYY-MM-DD
type AddLeaveRequest struct {
	EmployeeID  string `form:"employee_id"`
	LeaveType   string `form:"leave_type"`
	Date        string `form:"date"`
	Reason      string `form:"reason"`
	Designation string `form:"designation"`
}

// UpdateLeaveRequest 请假状态更新请求
type UpdateLeaveRequest struct {
	Status string `json:"status" binding:"required"`
}

// CalendarRequest 请假日历请求，month 为 0-11
type CalendarRequest struct {
	Month int `json:"month"`
	Year  int `json:"year" binding:"required"`
}

// CalendarEventData 日历上的事件标注
type CalendarEventData struct {
	ID          string `json:"id"`
	SubjectName string `json:"subjectName"`
	SubjectRole string `json:"subjectRole"`
	DateKey     string `json:"dateKey"`
	Category    string `json:"category"`
	Note        string `json:"note"`
	Status      string `json:"status"`
}

// CalendarCellData 日历格子
type CalendarCellData struct {
	DateKey        string              `json:"dateKey"`
	DayOfMonth     int                 `json:"dayOfMonth"`
	IsCurrentMonth bool                `json:"isCurrentMonth"`
	IsToday        bool                `json:"isToday"`
	Events         []CalendarEventData `json:"events"`
}

// CalendarResponse 请假日历响应，cells 固定 42 格。
// approvedList 是当月已批准的请假按日期排序，侧栏展示用。
type CalendarResponse struct {
	Month        int                 `json:"month"`
	Year         int                 `json:"year"`
	Cells        []CalendarCellData  `json:"cells"`
	ApprovedList []CalendarEventData `json:"approvedList"`
}
