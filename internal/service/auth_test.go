package service

import (
	"errors"
	"testing"

	"HRDesk/internal/model"
	pkgerrors "HRDesk/pkg/errors"
	"HRDesk/utils"
)

// 登录闸门：密码错误归为凭证无效，邮箱未验证的账号即使密码正确也拒绝登录。

func TestSignInGate(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	cases := []struct {
		name     string
		verified bool
		password string
		want     error
	}{
		{"verified account with right password", true, "correct-horse", nil},
		{"wrong password", true, "battery-staple", pkgerrors.CredentialsInvalid},
		{"unverified email", false, "correct-horse", pkgerrors.EmailNotVerified},
		{"wrong password masks verification state", false, "battery-staple", pkgerrors.CredentialsInvalid},
	}

	for _, tc := range cases {
		account := &model.HRAccount{
			PasswordHash:  hash,
			EmailVerified: tc.verified,
		}

		got := signInGate(account, tc.password)
		if tc.want == nil {
			if got != nil {
				t.Errorf("%s: signInGate = %v, want nil", tc.name, got)
			}
			continue
		}
		if !errors.Is(got, tc.want) {
			t.Errorf("%s: signInGate = %v, want %v", tc.name, got, tc.want)
		}
	}
}
