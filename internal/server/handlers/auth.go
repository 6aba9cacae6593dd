package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vkazakov/gotodo/internal/storage"
	"github.com/vkazakov/gotodo/internal/todo"
)

// AuthHandler обрабатывает регистрацию, вход и выход пользователей
type AuthHandler struct {
	logger        *slog.Logger
	service       *todo.Service
	sessionConfig SessionConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, service *todo.Service, sessionConfig SessionConfig) *AuthHandler {
	return &AuthHandler{
		logger:        logger,
		service:       service,
		sessionConfig: sessionConfig,
	}
}

// SignupPage обрабатывает GET /signup
func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(h.logger, w, "signup.html", loginPageData{Flash: PopFlash(w, r)})
}

// Signup обрабатывает POST /signup
// Регистрация нового пользователя из HTML формы
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "failed to parse signup form", slog.Any("error", err))
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	if username == "" || password == "" {
		SetFlash(w, "error", "Please provide both username and password.")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	if password != confirm {
		SetFlash(w, "error", "Passwords do not match.")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	if err := h.service.Register(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, todo.ErrInvalidInput):
			h.logger.WarnContext(ctx, "invalid signup input", slog.String("username", username), slog.Any("error", err))
			SetFlash(w, "error", inputErrorMessage(err))
		case errors.Is(err, storage.ErrUserAlreadyExists):
			h.logger.WarnContext(ctx, "signup with taken username", slog.String("username", username))
			SetFlash(w, "error", "Username already exists. Please choose another.")
		default:
			h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
			SetFlash(w, "error", "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	SetFlash(w, "success", "Account created successfully! Please login.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage обрабатывает GET /login
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(h.logger, w, "login.html", loginPageData{Flash: PopFlash(w, r)})
}

// Login обрабатывает POST /login
// Аутентификация пользователя и выставление session cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "failed to parse login form", slog.Any("error", err))
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if username == "" || password == "" {
		SetFlash(w, "error", "Please provide both username and password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.service.VerifyCredentials(ctx, username, password); err != nil {
		if errors.Is(err, todo.ErrInvalidCredentials) {
			// Неизвестный username и неверный пароль дают одинаковый ответ
			h.logger.WarnContext(ctx, "login failed", slog.String("username", username))
			SetFlash(w, "error", "Invalid username or password.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify credentials", slog.Any("error", err))
		SetFlash(w, "error", "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := NewSessionToken(h.sessionConfig, username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create session token", slog.Any("error", err))
		SetFlash(w, "error", "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	SetSessionCookie(w, h.sessionConfig, token)

	h.logger.InfoContext(ctx, "user logged in", slog.String("username", username))

	SetFlash(w, "success", "Welcome back!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout обрабатывает GET /logout
// Удаляет session cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearSessionCookie(w)
	SetFlash(w, "info", "You have been logged out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// inputErrorMessage снимает префикс ErrInvalidInput для показа пользователю
// Валидационные сообщения не содержат чувствительных данных
func inputErrorMessage(err error) string {
	return strings.TrimPrefix(err.Error(), todo.ErrInvalidInput.Error()+": ")
}
