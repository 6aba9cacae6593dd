package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vkazakov/gotodo/internal/config"
	"github.com/vkazakov/gotodo/internal/server/handlers"
	"github.com/vkazakov/gotodo/internal/server/middleware"
	"github.com/vkazakov/gotodo/internal/todo"
)

// Лимиты для login/signup: защита от перебора паролей
const (
	authRateLimit  = 10
	authRateWindow = time.Minute

	readTimeout     = 10 * time.Second
	writeTimeout    = 10 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server представляет HTTP сервер приложения
type Server struct {
	logger      *slog.Logger
	httpServer  *http.Server
	rateLimiter *middleware.RateLimiter
}

// New создает сервер: собирает handlers, маршруты и цепочку middleware
func New(cfg *config.Config, logger *slog.Logger, service *todo.Service, version string) *Server {
	sessionConfig := handlers.SessionConfig{
		Secret: []byte(cfg.SessionSecret),
		TTL:    cfg.SessionTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, service, sessionConfig)
	taskHandler := handlers.NewTaskHandler(logger, service)
	healthHandler := handlers.NewHealthHandler(logger, version)

	rateLimiter := middleware.NewRateLimiter(authRateLimit, authRateWindow, logger)
	requireSession := middleware.SessionAuthMiddleware(logger, sessionConfig)

	mux := http.NewServeMux()

	// Страницы входа и регистрации; POST дополнительно под rate limit
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.Handle("POST /login", rateLimiter.Middleware(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("GET /signup", authHandler.SignupPage)
	mux.Handle("POST /signup", rateLimiter.Middleware(http.HandlerFunc(authHandler.Signup)))
	mux.HandleFunc("GET /logout", authHandler.Logout)

	// Страница списка и операции над задачами требуют сессию
	mux.Handle("GET /{$}", requireSession(http.HandlerFunc(taskHandler.Index)))
	mux.Handle("POST /add", requireSession(http.HandlerFunc(taskHandler.Add)))
	mux.Handle("POST /complete/{id}", requireSession(http.HandlerFunc(taskHandler.Complete)))
	mux.Handle("POST /delete/{id}", requireSession(http.HandlerFunc(taskHandler.Delete)))

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Внешняя цепочка: recovery поверх логирования
	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		logger: logger,
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		rateLimiter: rateLimiter,
	}
}

// Run запускает сервер и блокируется до отмены контекста
// После отмены выполняется graceful shutdown с таймаутом
func (s *Server) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	s.rateLimiter.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
