package cache

import (
	"context"
	"time"

	"HRDesk/config"
	"HRDesk/storage/redis"
)

const (
	tokenPrefix = "token"
)

// SetRefreshToken 存储 refresh token 到 Redis
// Key: hrdesk:token:refresh:{account_id}
// TTL: JWT_REFRESH_DAYS 天
func SetRefreshToken(ctx context.Context, accountID, refreshToken string) error {
	key := redis.Key(tokenPrefix, "refresh", accountID)
	ttl := time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour

	return redis.Client().Set(ctx, key, refreshToken, ttl).Err()
}

// GetRefreshToken 从 Redis 获取 refresh token
func GetRefreshToken(ctx context.Context, accountID string) (string, error) {
	key := redis.Key(tokenPrefix, "refresh", accountID)
	return redis.Client().Get(ctx, key).Result()
}

// DeleteRefreshToken 删除 refresh token（用于登出或 token 失效）
func DeleteRefreshToken(ctx context.Context, accountID string) error {
	key := redis.Key(tokenPrefix, "refresh", accountID)
	return redis.Client().Del(ctx, key).Err()
}

// ValidateRefreshTokenExists 检查 refresh token 是否存在且匹配
func ValidateRefreshTokenExists(ctx context.Context, accountID, refreshToken string) bool {
	storedToken, err := GetRefreshToken(ctx, accountID)
	if err != nil {
		return false
	}
	return storedToken == refreshToken
}
