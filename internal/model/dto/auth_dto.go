package dto

// ========== Auth 相关 DTO ==========

// SignUpRequest HR 注册请求
type SignUpRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignInRequest HR 登录请求
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthUserSnapshot 登录时的账号快照
type AuthUserSnapshot struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Token         string `json:"token"`
	RefreshToken  string `json:"refresh_token"`
	ExpiresIn     int    `json:"expires_in"`
}

// SignInResponse 登录响应，客户端从 data.user.token 取凭证
type SignInResponse struct {
	User AuthUserSnapshot `json:"user"`
}

// RefreshTokenRequest 刷新 token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse 刷新 token 响应
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// SendEmailOTPRequest 发送邮箱验证码请求
type SendEmailOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

// VerifyEmailOTPRequest 验证邮箱验证码请求
type VerifyEmailOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}
