package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	ri "github.com/redis/go-redis/v9"

	"HRDesk/internal/model/dto"
	"HRDesk/storage/redis"
)

// 请假日历按 (month, year) 缓存，写操作后整月失效
// Key: hrdesk:calendar:{year}:{month}
// TTL: 10分钟

const (
	calendarPrefix = "calendar"
	calendarTTL    = 10 * time.Minute
)

func calendarKey(month, year int) string {
	return redis.Key(calendarPrefix, fmt.Sprintf("%d", year), fmt.Sprintf("%d", month))
}

// SetCalendar 缓存整月日历
func SetCalendar(ctx context.Context, month, year int, resp *dto.CalendarResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return redis.Client().Set(ctx, calendarKey(month, year), data, calendarTTL).Err()
}

// GetCalendar 取缓存的整月日历，miss 返回 (nil, nil)
func GetCalendar(ctx context.Context, month, year int) (*dto.CalendarResponse, error) {
	data, err := redis.Client().Get(ctx, calendarKey(month, year)).Bytes()
	if err == ri.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var resp dto.CalendarResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// InvalidateCalendar 使某个月的缓存失效
func InvalidateCalendar(ctx context.Context, month, year int) error {
	return redis.Client().Del(ctx, calendarKey(month, year)).Err()
}
