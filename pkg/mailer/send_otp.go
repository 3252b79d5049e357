package mailer

import (
	"context"
	"fmt"

	"HRDesk/config"
)

// SendOTPMail 发送邮箱验证码
func SendOTPMail(ctx context.Context, email, code string) error {
	subject := "HRDesk Verification Code"
	body := fmt.Sprintf(
		"Your verification code is %s.\n\nIt expires in %d minutes. If you did not request this code, please ignore this mail.",
		code, config.Cfg.OTPExpireSeconds/60,
	)

	return Send(ctx, []string{email}, subject, body)
}

// SendLeaveStatusMail 请假审批结果通知
func SendLeaveStatusMail(ctx context.Context, email, employeeName, leaveType, status string) error {
	subject := fmt.Sprintf("Leave Request %s", status)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s request has been %s.\n\nHRDesk",
		employeeName, leaveType, status,
	)

	return Send(ctx, []string{email}, subject, body)
}
