package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost определяет стоимость bcrypt
// DefaultCost (10) дает задержку проверки в пределах интерактивного логина
const HashCost = bcrypt.DefaultCost

// HashPassword хеширует пароль через bcrypt (соль генерируется автоматически).
// Два вызова для одного и того же пароля возвращают разные хеши.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword проверяет пароль против сохраненного bcrypt хеша.
// Сравнение внутри bcrypt устойчиво к timing-атакам.
// Возвращает nil при совпадении, ошибку при несовпадении или битом хеше.
func VerifyPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("password does not match")
		}
		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
