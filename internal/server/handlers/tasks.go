package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vkazakov/gotodo/internal/storage"
	"github.com/vkazakov/gotodo/internal/todo"
)

// TaskHandler обрабатывает страницу списка и операции над задачами
// Все операции скоупятся username из session (положен auth middleware в контекст)
type TaskHandler struct {
	logger  *slog.Logger
	service *todo.Service
}

// NewTaskHandler создает новый handler для задач
func NewTaskHandler(logger *slog.Logger, service *todo.Service) *TaskHandler {
	return &TaskHandler{
		logger:  logger,
		service: service,
	}
}

// Index обрабатывает GET /
// Главная страница: оба списка задач и счетчики
func (h *TaskHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := UsernameFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	todos, completed, err := h.service.GetTasks(ctx, username)
	if err != nil {
		h.handleTaskError(w, r, username, err)
		return
	}

	stats, err := h.service.GetStats(ctx, username)
	if err != nil {
		h.handleTaskError(w, r, username, err)
		return
	}

	renderTemplate(h.logger, w, "index.html", indexPageData{
		Flash:     PopFlash(w, r),
		Stats:     stats,
		Username:  username,
		Todos:     todos,
		Completed: completed,
	})
}

// Add обрабатывает POST /add
// Добавление задачи из формы на главной странице
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := UsernameFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "failed to parse add form", slog.Any("error", err))
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	text := r.PostFormValue("task")

	if _, err := h.service.AddTask(ctx, username, text); err != nil {
		if errors.Is(err, todo.ErrInvalidInput) {
			SetFlash(w, "error", "Task cannot be empty!")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.handleTaskError(w, r, username, err)
		return
	}

	SetFlash(w, "success", "Task added successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Complete обрабатывает POST /complete/{id}
// Перенос задачи из активных в завершенные
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := UsernameFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		SetFlash(w, "error", "Invalid task id.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := h.service.CompleteTask(ctx, username, taskID); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			// Уже завершена, уже удалена или никогда не существовала
			SetFlash(w, "error", "Task not found.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.handleTaskError(w, r, username, err)
		return
	}

	SetFlash(w, "success", "Task marked as completed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete обрабатывает POST /delete/{id}
// Удаление задачи из любого из двух списков
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := UsernameFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	taskID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		SetFlash(w, "error", "Invalid task id.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := h.service.DeleteTask(ctx, username, taskID); err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			SetFlash(w, "error", "Task not found.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.handleTaskError(w, r, username, err)
		return
	}

	SetFlash(w, "success", "Task deleted successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleTaskError разбирает ошибки storage, общие для всех операций над задачами
// Пользователь мог быть удален из БД при живой сессии — это "session expired"
func (h *TaskHandler) handleTaskError(w http.ResponseWriter, r *http.Request, username string, err error) {
	ctx := r.Context()

	if errors.Is(err, storage.ErrUserNotFound) {
		h.logger.WarnContext(ctx, "session user not found", slog.String("username", username))
		ClearSessionCookie(w)
		SetFlash(w, "error", "Session expired. Please login again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.logger.ErrorContext(ctx, "task operation failed",
		slog.String("username", username),
		slog.Any("error", err))
	SetFlash(w, "error", "Something went wrong. Please try again.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
