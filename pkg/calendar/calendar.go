package calendar

import (
	"time"

	"HRDesk/utils"
)

// 月历网格：固定 6 周 x 7 天 = 42 格，首格总是当月 1 号所在周的周日。
// 不足整周的格子属于相邻月份，布局统一，前端不需要特判周数。

const (
	// GridSize 网格单元总数
	GridSize = 42

	// DateKeyLayout 日期键格式，补零的 ISO 日期，作为格子和事件的连接键
	DateKeyLayout = "2006-01-02"
)

// Event 挂在格子上的事件（请假记录、考勤记录）
type Event struct {
	ID          string `json:"id"`
	SubjectName string `json:"subject_name"`
	SubjectRole string `json:"subject_role"`
	DateKey     string `json:"date_key"`
	Category    string `json:"category"`
	Note        string `json:"note"`
	Status      string `json:"status"`
}

// Cell 网格中的一个日期格
type Cell struct {
	Date           time.Time `json:"date"`
	DateKey        string    `json:"date_key"`
	DayOfMonth     int       `json:"day_of_month"`
	IsCurrentMonth bool      `json:"is_current_month"`
	IsToday        bool      `json:"is_today"`
	Events         []Event   `json:"events,omitempty"`
}

// DateKey 返回补零的 ISO 日期字符串，按字符串精确比较，避免时区漂移
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// BuildMonthGrid 生成 (month, year) 的 42 格月历。
// month 是 0 基的月份索引（0 = 一月）；越界的 month 必须先经 Normalize 处理。
// today 只按年月日参与 IsToday 比较，时钟部分被忽略。
func BuildMonthGrid(month, year int, today time.Time) []Cell {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, today.Location())
	start := first.AddDate(0, 0, -int(first.Weekday())) // Weekday 0 = 周日

	cells := make([]Cell, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		d := start.AddDate(0, 0, i)
		y, m, day := d.Date()

		cells = append(cells, Cell{
			Date:           d,
			DateKey:        DateKey(d),
			DayOfMonth:     day,
			IsCurrentMonth: int(m)-1 == month && y == year,
			IsToday:        utils.SameDay(d, today),
		})
	}

	return cells
}

// Merge 按 DateKey 把事件挂到当月格子上。
// 非当月格子即使有匹配数据也不挂，相邻月份的数据等用户翻过去再取。
func Merge(cells []Cell, events map[string][]Event) {
	for i := range cells {
		if !cells[i].IsCurrentMonth {
			continue
		}
		if evs, ok := events[cells[i].DateKey]; ok && len(evs) > 0 {
			cells[i].Events = evs
		}
	}
}
