package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vkazakov/gotodo/internal/server/handlers"
)

// SessionAuthMiddleware создает middleware для проверки session cookie
// Неаутентифицированные запросы к страницам редиректятся на /login
func SessionAuthMiddleware(logger *slog.Logger, sessionConfig handlers.SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(handlers.SessionCookieName)
			if err != nil {
				if !errors.Is(err, http.ErrNoCookie) {
					logger.Warn("failed to read session cookie", "error", err)
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			// Валидируем токен из cookie
			claims, err := handlers.ValidateSessionToken(sessionConfig, cookie.Value)
			if err != nil {
				logger.Warn("Invalid session token", "error", err)
				handlers.ClearSessionCookie(w)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			// Добавляем username из токена в контекст
			ctx := context.WithValue(r.Context(), handlers.UsernameKey, claims.Username)

			logger.Debug("User authenticated", "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
