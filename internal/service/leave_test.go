package service

import (
	"testing"

	"HRDesk/pkg/form"
)

// 请假申请里证明材料是可选项，只填文本字段不带附件也必须过校验。

func TestAddLeaveRulesDocumentOptional(t *testing.T) {
	values := form.Values{
		Fields: map[string]string{
			"employee_id": "123456789",
			"leave_type":  "sick",
			"date":        "2026-03-05",
			"reason":      "Fever",
			"designation": "Backend Developer",
		},
		HasFile: false,
	}

	if err := form.Check(addLeaveRules, values); err != nil {
		t.Errorf("Check without document = %v, want nil", err)
	}
}

func TestAddLeaveRulesRequiredFields(t *testing.T) {
	cases := []struct {
		missing string
	}{
		{"employee_id"},
		{"leave_type"},
		{"date"},
		{"reason"},
		{"designation"},
	}

	for _, tc := range cases {
		values := form.Values{
			Fields: map[string]string{
				"employee_id": "123456789",
				"leave_type":  "sick",
				"date":        "2026-03-05",
				"reason":      "Fever",
				"designation": "Backend Developer",
			},
		}
		values.Fields[tc.missing] = ""

		err := form.Check(addLeaveRules, values)
		if err == nil {
			t.Errorf("Check with empty %s = nil, want error", tc.missing)
			continue
		}
		re, ok := err.(*form.RuleError)
		if !ok {
			t.Errorf("Check with empty %s returned %T, want *form.RuleError", tc.missing, err)
			continue
		}
		if re.Field != tc.missing {
			t.Errorf("Check with empty %s flagged field %q", tc.missing, re.Field)
		}
	}
}
