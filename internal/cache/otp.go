package cache

import (
	"context"
	"time"

	ri "github.com/redis/go-redis/v9"

	"HRDesk/config"
	"HRDesk/storage/redis"
)

// 邮箱验证码存储：hrdesk:otp:{email}
// TTL: OTP_EXPIRE_SECONDS

// 每日发送计数：hrdesk:otp:count:{email}:{date}
// TTL: 到当天结束

// 已验证标记：hrdesk:otp:verified:{email}
// 注册前必须先通过验证码校验，标记 24 小时内有效

const (
	otpPrefix   = "otp"
	verifiedTTL = 24 * time.Hour
)

// SetOTP 存储邮箱验证码
func SetOTP(ctx context.Context, email, code string) error {
	key := redis.Key(otpPrefix, email)
	ttl := time.Duration(config.Cfg.OTPExpireSeconds) * time.Second

	return redis.Client().Set(ctx, key, code, ttl).Err()
}

func GetOTP(ctx context.Context, email string) (string, error) {
	key := redis.Key(otpPrefix, email)
	return redis.Client().Get(ctx, key).Result()
}

func DeleteOTP(ctx context.Context, email string) error {
	key := redis.Key(otpPrefix, email)
	return redis.Client().Del(ctx, key).Err()
}

// IncrOTPCount 增加今日发送计数，返回当前次数
func IncrOTPCount(ctx context.Context, email string) (int, error) {
	date := time.Now().Format("2006-01-02")
	key := redis.Key(otpPrefix, "count", email, date)

	count, err := redis.Client().Incr(ctx, key).Result()
	if err != nil {
		return 0, err // 具体在业务层处理报错
	}

	if count == 1 { // 今天第一次发送，到第二天零点过期
		now := time.Now()
		tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		redis.Client().Expire(ctx, key, tomorrow.Sub(now))
	}

	return int(count), nil
}

func GetOTPCount(ctx context.Context, email string) (int, error) {
	date := time.Now().Format("2006-01-02")
	key := redis.Key(otpPrefix, "count", email, date)

	count, err := redis.Client().Get(ctx, key).Int()
	if err == ri.Nil {
		return 0, nil
	}

	return count, err
}

// MarkEmailVerified 记录邮箱已通过验证码校验
func MarkEmailVerified(ctx context.Context, email string) error {
	key := redis.Key(otpPrefix, "verified", email)
	return redis.Client().Set(ctx, key, 1, verifiedTTL).Err()
}

// IsEmailVerified 检查邮箱是否带有效的已验证标记
func IsEmailVerified(ctx context.Context, email string) (bool, error) {
	key := redis.Key(otpPrefix, "verified", email)
	result, err := redis.Client().Exists(ctx, key).Result()
	return result > 0, err
}

// ClearEmailVerified 注册完成后清掉一次性标记
func ClearEmailVerified(ctx context.Context, email string) error {
	key := redis.Key(otpPrefix, "verified", email)
	return redis.Client().Del(ctx, key).Err()
}
