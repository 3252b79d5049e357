package service

import (
	"testing"

	"HRDesk/internal/model"
)

func TestPositionList(t *testing.T) {
	resp := Position().List()

	if len(resp.PositionList) == 0 {
		t.Fatal("position catalog should not be empty")
	}

	seen := make(map[string]bool)
	for _, p := range resp.PositionList {
		if p.Code == "" || p.Title == "" {
			t.Errorf("position entry missing code or title: %+v", p)
		}
		if seen[p.Code] {
			t.Errorf("duplicate position code %q", p.Code)
		}
		seen[p.Code] = true
	}
}

func TestPositionTitle(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"backend_dev", "Backend Developer"},
		{"hr_executive", "Human Resource Executive"},
		{"unknown_code", "N/A"},
		{"", "N/A"},
	}

	for _, tc := range cases {
		if got := Position().Title(tc.code); got != tc.want {
			t.Errorf("Title(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

// 响应里的职位要展示名称而不是 code，未知 code 兜底为 "N/A"。

func TestMappersResolvePositionTitle(t *testing.T) {
	att := toAttendanceData(attendanceRow{
		employee: model.Employee{FullName: "Jane Roe", Position: "backend_dev"},
	})
	if att.Position != "Backend Developer" {
		t.Errorf("toAttendanceData Position = %q, want %q", att.Position, "Backend Developer")
	}

	emp := toEmployeeData(model.Employee{FullName: "Jane Roe", Position: "no_such_code"})
	if emp.Position != "N/A" {
		t.Errorf("toEmployeeData Position = %q, want %q", emp.Position, "N/A")
	}

	cand := toCandidateData(model.Candidate{FullName: "John Doe", Position: "qa_engineer"})
	if cand.Position != "QA Engineer" {
		t.Errorf("toCandidateData Position = %q, want %q", cand.Position, "QA Engineer")
	}
}
