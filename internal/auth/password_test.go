package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pass1234")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// Хеш никогда не совпадает с plaintext
	assert.NotEqual(t, "pass1234", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected bcrypt hash format")
}

func TestHashPassword_Empty(t *testing.T) {
	hash, err := HashPassword("")
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	// Одинаковый пароль у двух пользователей дает разные хеши (соль)
	hash1, err := HashPassword("pass1234")
	require.NoError(t, err)

	hash2, err := HashPassword("pass1234")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)

	// Но оба проходят проверку
	assert.NoError(t, VerifyPassword(hash1, "pass1234"))
	assert.NoError(t, VerifyPassword(hash2, "pass1234"))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "correct password",
			password: "correct-password",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			wantErr:  true,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
		{
			name:     "case matters",
			password: "Correct-Password",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(hash, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	err := VerifyPassword("not-a-bcrypt-hash", "pass1234")
	assert.Error(t, err)
}
