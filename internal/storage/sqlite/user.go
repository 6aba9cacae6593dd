package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vkazakov/gotodo/internal/models"
	"github.com/vkazakov/gotodo/internal/storage"
)

// querier объединяет *sql.DB и *sql.Tx для чтения документа пользователя
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateUser creates a new user row
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	todos, completed, err := marshalLists(user)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (username, password, todos, completed, last_task_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		user.Username,
		user.PasswordHash,
		todos,
		completed,
		user.LastTaskID,
		user.CreatedAt,
	)

	if err != nil {
		// Проверяем на duplicate username
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUser retrieves the full user document by username
func (s *Storage) GetUser(ctx context.Context, username string) (*models.User, error) {
	return getUser(ctx, s.db, username)
}

// UserExists reports whether a user row with this username exists
func (s *Storage) UserExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username = ?`

	var one int
	err := s.db.QueryRowContext(ctx, query, username).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return true, nil
}

// getUser читает строку пользователя и разворачивает JSON списки задач
func getUser(ctx context.Context, q querier, username string) (*models.User, error) {
	query := `
		SELECT username, password, todos, completed, last_task_id, created_at
		FROM users
		WHERE username = ?
	`

	user := &models.User{}
	var todos, completed []byte

	err := q.QueryRowContext(ctx, query, username).Scan(
		&user.Username,
		&user.PasswordHash,
		&todos,
		&completed,
		&user.LastTaskID,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := json.Unmarshal(todos, &user.Todos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal todos: %w", err)
	}
	if err := json.Unmarshal(completed, &user.Completed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completed: %w", err)
	}

	return user, nil
}

// updateUser перезаписывает документ пользователя целиком
func updateUser(ctx context.Context, tx *sql.Tx, user *models.User) error {
	todos, completed, err := marshalLists(user)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET todos = ?, completed = ?, last_task_id = ?
		WHERE username = ?
	`

	result, err := tx.ExecContext(ctx, query, todos, completed, user.LastTaskID, user.Username)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// marshalLists сериализует оба списка задач в JSON
func marshalLists(user *models.User) (todos, completed []byte, err error) {
	todos, err = json.Marshal(user.Todos)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal todos: %w", err)
	}
	completed, err = json.Marshal(user.Completed)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal completed: %w", err)
	}
	return todos, completed, nil
}
