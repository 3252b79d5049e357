package model

// OTPMailMessage 邮箱验证码投递消息
type OTPMailMessage struct {
	MessageID   string `json:"message_id"` // 消息唯一ID，用于幂等性检查
	Email       string `json:"email"`
	Code        string `json:"code"`
	RequestedAt string `json:"requested_at"`
}

// LeaveNotifyMessage 请假审批结果通知消息
type LeaveNotifyMessage struct {
	MessageID    string `json:"message_id"` // 消息唯一ID，用于幂等性检查
	LeaveID      int64  `json:"leave_id"`
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	LeaveType    string `json:"leave_type"`
	Status       string `json:"status"`
	DecidedAt    string `json:"decided_at"`
}

// LeaveDigestMessage 待审批请假的每日摘要消息
type LeaveDigestMessage struct {
	MessageID    string   `json:"message_id"` // 消息唯一ID，用于幂等性检查
	Date         string   `json:"date"`
	PendingCount int      `json:"pending_count"`
	Lines        []string `json:"lines"` // 每条待审批请假的摘要行
	Recipients   []string `json:"recipients"`
}
