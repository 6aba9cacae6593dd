package todo

import "errors"

// Service-level errors
var (
	// ErrInvalidCredentials indicates a failed login.
	// Неизвестный username и неверный пароль неразличимы снаружи,
	// чтобы не допускать перебор имен пользователей.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput indicates that username, password or task text
	// failed the validation policy. Wraps the validation detail.
	ErrInvalidInput = errors.New("invalid input")
)
