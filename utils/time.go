package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate 解析 YYYY-MM-DD 格式的日期字符串
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// DayStart 取日期的零点，按天比较用
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay 判断两个时间是否落在同一天
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
