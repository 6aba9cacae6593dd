package handlers

import (
	"context"
	"time"

	"github.com/vkazakov/gotodo/internal/models"
	"github.com/vkazakov/gotodo/internal/storage"
)

// mockUserStorage is an in-memory implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> User
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUser(ctx context.Context, username string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) UserExists(ctx context.Context, username string) (bool, error) {
	_, ok := m.users[username]
	return ok, nil
}

func (m *mockUserStorage) AddTask(ctx context.Context, username, text string) (*models.Task, error) {
	user, err := m.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user.LastTaskID++
	task := models.Task{ID: user.LastTaskID, Text: text, CreatedAt: &now}
	user.Todos = append(user.Todos, task)
	return &task, nil
}

func (m *mockUserStorage) CompleteTask(ctx context.Context, username string, taskID int64) error {
	user, err := m.GetUser(ctx, username)
	if err != nil {
		return err
	}
	for i := range user.Todos {
		if user.Todos[i].ID == taskID {
			now := time.Now().UTC()
			task := user.Todos[i]
			task.CreatedAt = nil
			task.CompletedAt = &now
			user.Todos = append(user.Todos[:i], user.Todos[i+1:]...)
			user.Completed = append(user.Completed, task)
			return nil
		}
	}
	return storage.ErrTaskNotFound
}

func (m *mockUserStorage) DeleteTask(ctx context.Context, username string, taskID int64) error {
	user, err := m.GetUser(ctx, username)
	if err != nil {
		return err
	}
	for i := range user.Todos {
		if user.Todos[i].ID == taskID {
			user.Todos = append(user.Todos[:i], user.Todos[i+1:]...)
			return nil
		}
	}
	for i := range user.Completed {
		if user.Completed[i].ID == taskID {
			user.Completed = append(user.Completed[:i], user.Completed[i+1:]...)
			return nil
		}
	}
	return storage.ErrTaskNotFound
}

func (m *mockUserStorage) GetTasks(ctx context.Context, username string) (todos, completed []models.Task, err error) {
	user, err := m.GetUser(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	return user.Todos, user.Completed, nil
}

func (m *mockUserStorage) GetStats(ctx context.Context, username string) (*models.Stats, error) {
	user, err := m.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return &models.Stats{
		ActiveCount:    len(user.Todos),
		CompletedCount: len(user.Completed),
	}, nil
}

func (m *mockUserStorage) Close() error {
	return nil
}
