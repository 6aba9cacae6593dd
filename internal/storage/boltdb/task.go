package boltdb

import (
	"context"
	"time"

	"go.etcd.io/bbolt"

	"github.com/vkazakov/gotodo/internal/models"
	"github.com/vkazakov/gotodo/internal/storage"
)

// AddTask allocates the next task id and appends the task to todos
// Счетчик LastTaskID обновляется в той же транзакции, что и список —
// id монотонно растут и не переиспользуются после удаления
func (s *Storage) AddTask(ctx context.Context, username, text string) (*models.Task, error) {
	var task *models.Task

	err := s.db.Update(func(tx *bbolt.Tx) error {
		user, err := getUser(tx, username)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user.LastTaskID++
		task = &models.Task{
			ID:        user.LastTaskID,
			Text:      text,
			CreatedAt: &now,
		}
		user.Todos = append(user.Todos, *task)

		return putUser(tx, user)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// CompleteTask moves the task from todos to completed in one document rewrite
func (s *Storage) CompleteTask(ctx context.Context, username string, taskID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		user, err := getUser(tx, username)
		if err != nil {
			return err
		}

		// Ищем задачу в активном списке
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

		return putUser(tx, user)
	})
}

// DeleteTask removes the task from whichever list currently holds it
func (s *Storage) DeleteTask(ctx context.Context, username string, taskID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		user, err := getUser(tx, username)
		if err != nil {
			return err
		}

		if removed := removeTask(&user.Todos, taskID); !removed {
			if removed = removeTask(&user.Completed, taskID); !removed {
				return storage.ErrTaskNotFound
			}
		}

		return putUser(tx, user)
	})
}

// GetTasks returns copies of the active and completed task lists
func (s *Storage) GetTasks(ctx context.Context, username string) (todos, completed []models.Task, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		user, err := getUser(tx, username)
		if err != nil {
			return err
		}
		todos = user.Todos
		completed = user.Completed
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return todos, completed, nil
}

// GetStats returns derived task counters
func (s *Storage) GetStats(ctx context.Context, username string) (*models.Stats, error) {
	var stats *models.Stats

	err := s.db.View(func(tx *bbolt.Tx) error {
		user, err := getUser(tx, username)
		if err != nil {
			return err
		}
		stats = &models.Stats{
			ActiveCount:    len(user.Todos),
			CompletedCount: len(user.Completed),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
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
