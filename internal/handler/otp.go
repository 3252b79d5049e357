package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"HRDesk/internal/model/dto"
	"HRDesk/internal/service"
	"HRDesk/pkg/response"
)

// SendEmailOTP 发送邮箱验证码
// POST /otp/send-email-otp
func SendEmailOTP(ctx context.Context, c *app.RequestContext) {
	var req dto.SendEmailOTPRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Verification().SendEmailOTP(ctx, req.Email); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"sent": true})
}

// VerifyEmailOTP 验证邮箱验证码
// POST /otp/verify-email-otp
func VerifyEmailOTP(ctx context.Context, c *app.RequestContext) {
	var req dto.VerifyEmailOTPRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Verification().VerifyEmailOTP(ctx, req.Email, req.OTP); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, map[string]interface{}{"verified": true})
}
