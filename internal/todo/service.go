package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vkazakov/gotodo/internal/auth"
	"github.com/vkazakov/gotodo/internal/models"
	"github.com/vkazakov/gotodo/internal/storage"
	"github.com/vkazakov/gotodo/internal/validation"
)

// Service реализует операции над аккаунтами и задачами поверх UserStorage.
// Владеет политикой валидации и хеширования паролей; вся персистентность — в storage.
type Service struct {
	logger  *slog.Logger
	storage storage.UserStorage
}

// NewService создает новый Service
func NewService(logger *slog.Logger, userStorage storage.UserStorage) *Service {
	return &Service{
		logger:  logger,
		storage: userStorage,
	}
}

// Register валидирует username и пароль, хеширует пароль и создает пользователя
// Возвращает ErrInvalidInput при нарушении политики,
// storage.ErrUserAlreadyExists если username занят
func (s *Service) Register(ctx context.Context, username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Todos:        []models.Task{},
		Completed:    []models.Task{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("username", username))
	return nil
}

// VerifyCredentials проверяет пару username/password
// Возвращает ErrInvalidCredentials и для неизвестного пользователя,
// и для неверного пароля; инфраструктурные ошибки пробрасываются как есть
func (s *Service) VerifyCredentials(ctx context.Context, username, password string) error {
	user, err := s.storage.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

// UserExists reports whether the username is registered
func (s *Service) UserExists(ctx context.Context, username string) (bool, error) {
	return s.storage.UserExists(ctx, username)
}

// AddTask валидирует текст и добавляет задачу в активный список пользователя
func (s *Service) AddTask(ctx context.Context, username, text string) (*models.Task, error) {
	if err := validation.ValidateTaskText(text); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	task, err := s.storage.AddTask(ctx, username, text)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "task added",
		slog.String("username", username),
		slog.Int64("task_id", task.ID))

	return task, nil
}

// CompleteTask переносит задачу из активных в завершенные
func (s *Service) CompleteTask(ctx context.Context, username string, taskID int64) error {
	if err := s.storage.CompleteTask(ctx, username, taskID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "task completed",
		slog.String("username", username),
		slog.Int64("task_id", taskID))

	return nil
}

// DeleteTask удаляет задачу из любого из двух списков
func (s *Service) DeleteTask(ctx context.Context, username string, taskID int64) error {
	if err := s.storage.DeleteTask(ctx, username, taskID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "task deleted",
		slog.String("username", username),
		slog.Int64("task_id", taskID))

	return nil
}

// GetTasks возвращает активный и завершенный списки для отображения
func (s *Service) GetTasks(ctx context.Context, username string) (todos, completed []models.Task, err error) {
	return s.storage.GetTasks(ctx, username)
}

// GetStats возвращает счетчики задач пользователя
func (s *Service) GetStats(ctx context.Context, username string) (*models.Stats, error) {
	return s.storage.GetStats(ctx, username)
}
