package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 4-32 символа. Username регистрозависимый: "Alice" и "alice" — разные аккаунты.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{4,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 4
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32

	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 4
	// MaxPasswordLen максимальная длина пароля (ограничение bcrypt — 72 байта)
	MaxPasswordLen = 72

	// MaxTaskTextLen максимальная длина текста задачи
	MaxTaskTextLen = 500
)

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 4-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
// Минимум 4 символа (политика приложения), максимум 72 байта (ограничение bcrypt)
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLen)
	}

	return nil
}

// ValidateTaskText проверяет текст задачи: непустой после trim, не длиннее лимита
func ValidateTaskText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("task text cannot be empty")
	}

	if len(text) > MaxTaskTextLen {
		return fmt.Errorf("task text must not exceed %d characters", MaxTaskTextLen)
	}

	return nil
}
