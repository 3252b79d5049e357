package form

import (
	"errors"
	"testing"
)

var candidateRules = []Rule{
	{Field: "full_name", Kind: Name},
	{Field: "email", Kind: Email},
	{Field: "phone_number", Kind: Phone},
	{Field: "position", Kind: Required},
	{Field: "experience", Kind: Required},
	{Field: "resume", Kind: File},
	{Field: "declaration", Kind: Declaration},
}

func validValues() Values {
	return Values{
		Fields: map[string]string{
			"full_name":    "Jane Doe",
			"email":        "jane@x.com",
			"phone_number": "1234567890",
			"position":     "Dev",
			"experience":   "2",
		},
		HasFile: true,
		Checked: true,
	}
}

func TestCheckValid(t *testing.T) {
	if err := Check(candidateRules, validValues()); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
	if !Valid(candidateRules, validValues()) {
		t.Error("Valid should be true")
	}
}

func TestCheckSingleFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Values)
		field  string
		kind   Kind
	}{
		{"unchecked declaration", func(v *Values) { v.Checked = false }, "declaration", Declaration},
		{"missing file", func(v *Values) { v.HasFile = false }, "resume", File},
		{"empty position", func(v *Values) { v.Fields["position"] = "  " }, "position", Required},
		{"digits in name", func(v *Values) { v.Fields["full_name"] = "Jane 2" }, "full_name", Name},
		{"bad email", func(v *Values) { v.Fields["email"] = "jane@x" }, "email", Email},
		{"short phone", func(v *Values) { v.Fields["phone_number"] = "12345" }, "phone_number", Phone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := validValues()
			tc.mutate(&v)

			err := Check(candidateRules, v)
			var re *RuleError
			if !errors.As(err, &re) {
				t.Fatalf("expected RuleError, got %v", err)
			}
			if re.Field != tc.field || re.Kind != tc.kind {
				t.Errorf("got (%s, %d), want (%s, %d)", re.Field, re.Kind, tc.field, tc.kind)
			}
		})
	}
}

func TestCheckPriorityRequiredBeforePattern(t *testing.T) {
	// 姓名格式错 + 邮箱为空：必填检查优先，先报邮箱缺失
	v := validValues()
	v.Fields["full_name"] = "Jane 2"
	v.Fields["email"] = ""

	err := Check(candidateRules, v)
	var re *RuleError
	if !errors.As(err, &re) {
		t.Fatalf("expected RuleError, got %v", err)
	}
	if re.Field != "email" || re.Kind != Required {
		t.Errorf("presence failures must win over pattern failures, got (%s, %d)", re.Field, re.Kind)
	}
}

func TestCheckOneErrorAtATime(t *testing.T) {
	// 多个格式错时按规则声明顺序报第一个
	v := validValues()
	v.Fields["full_name"] = "Jane 2"
	v.Fields["phone_number"] = "abc"

	err := Check(candidateRules, v)
	var re *RuleError
	if !errors.As(err, &re) {
		t.Fatalf("expected RuleError, got %v", err)
	}
	if re.Field != "full_name" {
		t.Errorf("expected first declared failing rule, got %s", re.Field)
	}
}

func TestPatternImpliesRequired(t *testing.T) {
	v := validValues()
	v.Fields["full_name"] = ""

	err := Check(candidateRules, v)
	var re *RuleError
	if !errors.As(err, &re) {
		t.Fatalf("expected RuleError, got %v", err)
	}
	if re.Kind != Required {
		t.Errorf("empty pattern-governed field reports Required, got kind %d", re.Kind)
	}
}
