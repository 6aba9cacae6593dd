package storage

import (
	"context"

	"github.com/vkazakov/gotodo/internal/models"
)

// UserStorage defines interface for user and task persistence.
// Каждый пользователь хранится одним документом; все операции над задачами
// выполняются как одна атомарная перезапись документа этого пользователя.
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUser(ctx context.Context, username string) (*models.User, error)

	// UserExists reports whether a user with this username is registered
	UserExists(ctx context.Context, username string) (bool, error)

	// AddTask allocates the next task id for the user, stamps created_at
	// and appends the task to the todos list
	// Returns the created task, or ErrUserNotFound
	AddTask(ctx context.Context, username, text string) (*models.Task, error)

	// CompleteTask moves the task from todos to completed in one atomic
	// document rewrite: created_at is dropped, completed_at is stamped
	// Returns ErrTaskNotFound if the id is not in todos
	CompleteTask(ctx context.Context, username string, taskID int64) error

	// DeleteTask removes the task from whichever list currently holds it
	// Returns ErrTaskNotFound if the id is absent from both lists
	DeleteTask(ctx context.Context, username string, taskID int64) error

	// GetTasks returns the active and completed task lists in stored order
	// Returns ErrUserNotFound if user doesn't exist
	GetTasks(ctx context.Context, username string) (todos, completed []models.Task, err error)

	// GetStats returns derived task counters for the user
	// Returns ErrUserNotFound if user doesn't exist
	GetStats(ctx context.Context, username string) (*models.Stats, error)

	// Close releases the underlying store
	Close() error
}
