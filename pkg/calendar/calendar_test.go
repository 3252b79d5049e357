package calendar

import (
	"testing"
	"time"
)

func TestBuildMonthGridShape(t *testing.T) {
	today := time.Date(2024, time.June, 15, 13, 45, 0, 0, time.UTC)

	cases := []struct {
		name       string
		month      int
		year       int
		daysInMon  int
		firstCell  string
	}{
		{"june 2024 starts on saturday", 5, 2024, 30, "2024-05-26"},
		{"february leap year", 1, 2024, 29, "2024-01-28"},
		{"february non leap", 1, 2023, 28, "2023-01-29"},
		{"month starting on sunday", 8, 2024, 30, "2024-09-01"},
		{"december wraps into next year", 11, 2024, 31, "2024-12-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cells := BuildMonthGrid(tc.month, tc.year, today)

			if len(cells) != GridSize {
				t.Fatalf("expected %d cells, got %d", GridSize, len(cells))
			}
			if cells[0].Date.Weekday() != time.Sunday {
				t.Errorf("cell[0] should be a Sunday, got %s", cells[0].Date.Weekday())
			}
			if cells[0].DateKey != tc.firstCell {
				t.Errorf("expected first cell %s, got %s", tc.firstCell, cells[0].DateKey)
			}

			// 当月格子必须是一段连续区间，长度等于当月天数
			first, last := -1, -1
			count := 0
			for i, c := range cells {
				if c.IsCurrentMonth {
					if first == -1 {
						first = i
					}
					last = i
					count++
				}
			}
			if count != tc.daysInMon {
				t.Errorf("expected %d in-month cells, got %d", tc.daysInMon, count)
			}
			if last-first+1 != count {
				t.Errorf("in-month cells are not contiguous: first=%d last=%d count=%d", first, last, count)
			}
			if cells[first].DayOfMonth != 1 {
				t.Errorf("first in-month cell should be day 1, got %d", cells[first].DayOfMonth)
			}
		})
	}
}

func TestBuildMonthGridToday(t *testing.T) {
	today := time.Date(2024, time.June, 15, 23, 59, 59, 0, time.UTC)
	cells := BuildMonthGrid(5, 2024, today)

	var marked []string
	for _, c := range cells {
		if c.IsToday {
			marked = append(marked, c.DateKey)
		}
	}

	if len(marked) != 1 || marked[0] != "2024-06-15" {
		t.Errorf("expected exactly [2024-06-15] marked as today, got %v", marked)
	}

	// 别的月份里 today 不在网格内，不应有标记
	cells = BuildMonthGrid(0, 2024, today)
	for _, c := range cells {
		if c.IsToday {
			t.Errorf("no cell should be today in january grid, got %s", c.DateKey)
		}
	}
}

func TestMergeOnlyCurrentMonth(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	cells := BuildMonthGrid(5, 2024, today)

	events := map[string][]Event{
		"2024-06-10": {{ID: "1", SubjectName: "Arlene McCoy", Category: "sick_leave", Status: "approved"}},
		// 网格里 5 月末的格子存在，但不属于当月，不应被标注
		"2024-05-27": {{ID: "2", SubjectName: "Guy Hawkins"}},
		// 不在网格里的日期
		"2024-08-01": {{ID: "3"}},
	}

	Merge(cells, events)

	for _, c := range cells {
		switch c.DateKey {
		case "2024-06-10":
			if len(c.Events) != 1 || c.Events[0].SubjectName != "Arlene McCoy" {
				t.Errorf("expected one event on 2024-06-10, got %v", c.Events)
			}
		case "2024-05-27":
			if len(c.Events) != 0 {
				t.Errorf("out-of-month cell 2024-05-27 must not receive events")
			}
		default:
			if len(c.Events) != 0 {
				t.Errorf("unexpected events on %s", c.DateKey)
			}
		}
	}
}

func TestCursorTransitions(t *testing.T) {
	cases := []struct {
		from Cursor
		next Cursor
		prev Cursor
	}{
		{Cursor{11, 2024}, Cursor{0, 2025}, Cursor{10, 2024}},
		{Cursor{0, 2025}, Cursor{1, 2025}, Cursor{11, 2024}},
		{Cursor{5, 2024}, Cursor{6, 2024}, Cursor{4, 2024}},
	}

	for _, tc := range cases {
		if got := tc.from.Next(); got != tc.next {
			t.Errorf("%v.Next() = %v, want %v", tc.from, got, tc.next)
		}
		if got := tc.from.Previous(); got != tc.prev {
			t.Errorf("%v.Previous() = %v, want %v", tc.from, got, tc.prev)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		month, year int
		want        Cursor
	}{
		{12, 2024, Cursor{0, 2025}},
		{-1, 2025, Cursor{11, 2024}},
		{25, 2020, Cursor{1, 2022}},
		{-13, 2020, Cursor{11, 2018}},
		{3, 2024, Cursor{3, 2024}},
	}

	for _, tc := range cases {
		if got := Normalize(tc.month, tc.year); got != tc.want {
			t.Errorf("Normalize(%d, %d) = %v, want %v", tc.month, tc.year, got, tc.want)
		}
	}
}
