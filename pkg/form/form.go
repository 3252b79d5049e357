package form

import (
	"fmt"
	"regexp"
	"strings"
)

// 表单提交闸门：声明式规则集 + 一次只报第一个错。
// 必填项检查排在格式检查前面，两轮里都按规则声明顺序取第一个失败项。
// 校验不通过的提交在本地拦下，不落库也不发请求后续动作。

// Kind 规则类型
type Kind int

const (
	// Required 去掉首尾空白后非空即通过
	Required Kind = iota
	// Name 仅字母和空格
	Name
	// Email local@domain.tld 形状
	Email
	// Phone 恰好 10 位数字
	Phone
	// File 必须已选择附件，独立于字符串字段
	File
	// Declaration 声明勾选框必须勾上
	Declaration
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// Rule 绑定到某个字段的一条规则。Name/Email/Phone 同时蕴含必填。
type Rule struct {
	Field string
	Kind  Kind
}

// Values 一次提交携带的全部值
type Values struct {
	Fields  map[string]string
	HasFile bool
	Checked bool
}

// RuleError 第一个失败的规则
type RuleError struct {
	Field string
	Kind  Kind
}

func (e *RuleError) Error() string {
	switch e.Kind {
	case Name:
		return fmt.Sprintf("%s must only contain letters", e.Field)
	case Email:
		return fmt.Sprintf("%s is not a valid email address", e.Field)
	case Phone:
		return fmt.Sprintf("%s must be exactly 10 digits", e.Field)
	case File:
		return fmt.Sprintf("%s attachment is required", e.Field)
	case Declaration:
		return fmt.Sprintf("%s must be accepted", e.Field)
	default:
		return fmt.Sprintf("%s is required", e.Field)
	}
}

// Check 依固定优先级返回第一个失败的规则，全部通过返回 nil
func Check(rules []Rule, v Values) error {
	// 第一轮：所有必填/存在性检查
	for _, r := range rules {
		switch r.Kind {
		case Required, Name, Email, Phone:
			if strings.TrimSpace(v.Fields[r.Field]) == "" {
				return &RuleError{Field: r.Field, Kind: Required}
			}
		case File:
			if !v.HasFile {
				return &RuleError{Field: r.Field, Kind: File}
			}
		case Declaration:
			if !v.Checked {
				return &RuleError{Field: r.Field, Kind: Declaration}
			}
		}
	}

	// 第二轮：格式检查，此时字段已保证非空
	for _, r := range rules {
		val := strings.TrimSpace(v.Fields[r.Field])
		switch r.Kind {
		case Name:
			if !nameRe.MatchString(val) {
				return &RuleError{Field: r.Field, Kind: Name}
			}
		case Email:
			if !emailRe.MatchString(val) {
				return &RuleError{Field: r.Field, Kind: Email}
			}
		case Phone:
			if !phoneRe.MatchString(val) {
				return &RuleError{Field: r.Field, Kind: Phone}
			}
		}
	}

	return nil
}

// Valid 等价于 Check == nil
func Valid(rules []Rule, v Values) bool {
	return Check(rules, v) == nil
}
