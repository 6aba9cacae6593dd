package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/vkazakov/gotodo/internal/models"
	"github.com/vkazakov/gotodo/internal/storage"
)

// withUser выполняет read-modify-write документа пользователя в одной транзакции
func (s *Storage) withUser(ctx context.Context, username string, fn func(user *models.User) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback после успешного Commit — no-op
	defer func() { _ = tx.Rollback() }()

	user, err := getUser(ctx, tx, username)
	if err != nil {
		return err
	}

	if err := fn(user); err != nil {
		return err
	}

	if err := updateUser(ctx, tx, user); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AddTask allocates the next task id and appends the task to todos
func (s *Storage) AddTask(ctx context.Context, username, text string) (*models.Task, error) {
	var task *models.Task

	err := s.withUser(ctx, username, func(user *models.User) error {
		now := time.Now().UTC()
		user.LastTaskID++
		task = &models.Task{
			ID:        user.LastTaskID,
			Text:      text,
			CreatedAt: &now,
		}
		user.Todos = append(user.Todos, *task)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// CompleteTask moves the task from todos to completed in one transaction
func (s *Storage) CompleteTask(ctx context.Context, username string, taskID int64) error {
	return s.withUser(ctx, username, func(user *models.User) error {
		idx := -1
		for i := range user.Todos {
			if user.Todos[i].ID == taskID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return storage.ErrTaskNotFound
		}

		// Убираем created_at, проставляем completed_at и переносим в completed
		now := time.Now().UTC()
		task := user.Todos[idx]
		task.CreatedAt = nil
		task.CompletedAt = &now

		user.Todos = append(user.Todos[:idx], user.Todos[idx+1:]...)
		user.Completed = append(user.Completed, task)
		return nil
	})
}

// DeleteTask removes the task from whichever list currently holds it
func (s *Storage) DeleteTask(ctx context.Context, username string, taskID int64) error {
	return s.withUser(ctx, username, func(user *models.User) error {
		if removed := removeTask(&user.Todos, taskID); !removed {
			if removed = removeTask(&user.Completed, taskID); !removed {
				return storage.ErrTaskNotFound
			}
		}
		return nil
	})
}

// GetTasks returns the active and completed task lists in stored order
func (s *Storage) GetTasks(ctx context.Context, username string) (todos, completed []models.Task, err error) {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	return user.Todos, user.Completed, nil
}

// GetStats returns derived task counters
func (s *Storage) GetStats(ctx context.Context, username string) (*models.Stats, error) {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return &models.Stats{
		ActiveCount:    len(user.Todos),
		CompletedCount: len(user.Completed),
	}, nil
}

// removeTask удаляет задачу с данным id из списка, сохраняя порядок остальных
func removeTask(tasks *[]models.Task, taskID int64) bool {
	for i := range *tasks {
		if (*tasks)[i].ID == taskID {
			*tasks = append((*tasks)[:i], (*tasks)[i+1:]...)
			return true
		}
	}
	return false
}
