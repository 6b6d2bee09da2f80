package service

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/pizzafy/pizzafy/internal/config"
)

// ErrPasswordTooWeak 密码不满足策略要求
var ErrPasswordTooWeak = errors.New("密码不满足安全策略")

// validatePassword 按配置的密码策略校验明文密码
func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	minLength := policy.MinLength
	if minLength <= 0 {
		minLength = 8
	}
	if len(password) < minLength {
		return fmt.Errorf("%w: 长度不足 %d 位", ErrPasswordTooWeak, minLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return fmt.Errorf("%w: 缺少大写字母", ErrPasswordTooWeak)
	}
	if policy.RequireLower && !hasLower {
		return fmt.Errorf("%w: 缺少小写字母", ErrPasswordTooWeak)
	}
	if policy.RequireNumber && !hasNumber {
		return fmt.Errorf("%w: 缺少数字", ErrPasswordTooWeak)
	}
	if policy.RequireSpecial && !hasSpecial {
		return fmt.Errorf("%w: 缺少特殊字符", ErrPasswordTooWeak)
	}
	return nil
}
