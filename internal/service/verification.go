package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ri "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"HRDesk/config"
	"HRDesk/internal/cache"
	"HRDesk/internal/model"
	"HRDesk/internal/queue"
	pkgerrors "HRDesk/pkg/errors"
	"HRDesk/pkg/form"
	"HRDesk/pkg/logger"
	"HRDesk/storage/database"
	"HRDesk/utils"
)

/*
发送邮箱验证码的链路：
    [Handler] 参数校验（邮箱格式）
    [Service] 检查每日发送次数（Redis）
            -> 生成 6 位验证码
            -> 写入 Redis（OTP_EXPIRE_SECONDS TTL）
            -> 投递 MQ，由 worker 实际发信
            -> 更新发送计数
*/

var (
	verificationService *VerificationService
	verificationOnce    sync.Once
)

func Verification() *VerificationService {
	verificationOnce.Do(func() {
		verificationService = &VerificationService{}
	})
	return verificationService
}

type VerificationService struct{}

var emailRules = []form.Rule{
	{Field: "email", Kind: form.Email},
}

// SendEmailOTP 发送邮箱验证码
func (s *VerificationService) SendEmailOTP(ctx context.Context, email string) error {
	values := form.Values{Fields: map[string]string{"email": email}}
	if err := form.Check(emailRules, values); err != nil {
		return pkgerrors.Validation(err)
	}

	count, err := cache.GetOTPCount(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get OTP count: %w", err)
	}
	if count >= config.Cfg.OTPMaxDaily {
		return pkgerrors.OTPRateLimited
	}

	code, err := utils.GenerateOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := cache.SetOTP(ctx, email, code); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := queue.PublishOTPMail(model.OTPMailMessage{
		Email: email,
		Code:  code,
	}); err != nil {
		return fmt.Errorf("failed to enqueue OTP mail: %w", err)
	}

	if _, err := cache.IncrOTPCount(ctx, email); err != nil {
		logger.Logger.Warn("Failed to increment OTP count",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return nil
}

// VerifyEmailOTP 校验验证码，通过后把账号标记为已验证
func (s *VerificationService) VerifyEmailOTP(ctx context.Context, email, otp string) error {
	stored, err := cache.GetOTP(ctx, email)
	if err != nil {
		if errors.Is(err, ri.Nil) {
			return pkgerrors.OTPExpired
		}
		return fmt.Errorf("failed to get OTP: %w", err)
	}

	if stored != otp {
		return pkgerrors.OTPInvalid
	}

	if err := cache.DeleteOTP(ctx, email); err != nil {
		logger.Logger.Warn("Failed to delete consumed OTP",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	// 标记先于落库：注册发生在账号创建之前，靠这个标记放行
	if err := cache.MarkEmailVerified(ctx, email); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	db := database.DB()

	err = db.WithContext(ctx).
		Model(&model.HRAccount{}).
		Where("email = ?", email).
		Update("email_verified", true).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	logger.Logger.Info("Email verified",
		zap.String("email", email),
	)

	return nil
}
