package service

import (
	"testing"
	"time"

	"HRDesk/internal/model"
)

// 过滤管道依赖这些字段取值函数做大小写无关匹配，空字段必须返回空串而不是崩溃。

func TestCandidateField(t *testing.T) {
	c := model.Candidate{
		FullName:    "John Doe",
		Email:       "john@example.com",
		PhoneNumber: "9876543210",
		Position:    "backend_dev",
		Status:      model.CandidateStatusNew,
	}

	cases := []struct {
		field string
		want  string
	}{
		{"full_name", "John Doe"},
		{"email", "john@example.com"},
		{"phone_number", "9876543210"},
		{"position", "backend_dev"},
		{"status", "new"},
		{"nonexistent", ""},
	}

	for _, tc := range cases {
		if got := candidateField(c, tc.field); got != tc.want {
			t.Errorf("candidateField(%q) = %q, want %q", tc.field, got, tc.want)
		}
	}
}

func TestAttendanceRowField(t *testing.T) {
	r := attendanceRow{
		record: model.AttendanceRecord{
			Task:   "Dashboard refactor",
			Status: model.AttendancePresent,
			Date:   time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		},
		employee: model.Employee{
			FullName:   "Jane Cooper",
			Position:   "fullstack_dev",
			Department: "Engineering",
		},
	}

	cases := []struct {
		field string
		want  string
	}{
		{"employee_name", "Jane Cooper"},
		{"position", "fullstack_dev"},
		{"department", "Engineering"},
		{"task", "Dashboard refactor"},
		{"status", "present"},
		{"date", "2026-03-09"},
		{"other", ""},
	}

	for _, tc := range cases {
		if got := attendanceRowField(r, tc.field); got != tc.want {
			t.Errorf("attendanceRowField(%q) = %q, want %q", tc.field, got, tc.want)
		}
	}
}

func TestLeaveRowField(t *testing.T) {
	r := leaveRow{
		leave: model.LeaveRequest{
			Designation: "QA Engineer",
			Reason:      "family function",
			Status:      model.LeaveStatusPending,
			LeaveType:   model.LeaveTypeCasual,
		},
		employee: model.Employee{FullName: "Arjun Mehta"},
	}

	if got := leaveRowField(r, "employee_name"); got != "Arjun Mehta" {
		t.Errorf("employee_name = %q", got)
	}
	if got := leaveRowField(r, "status"); got != "pending" {
		t.Errorf("status = %q", got)
	}
	if got := leaveRowField(r, "leave_type"); got != "casual_leave" {
		t.Errorf("leave_type = %q", got)
	}
	if got := leaveRowField(r, "missing"); got != "" {
		t.Errorf("unknown field should be empty, got %q", got)
	}
}
