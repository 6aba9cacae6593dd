package handlers

import (
	"net/http"
	"net/url"
	"strings"
)

// flashCookieName имя короткоживущего cookie с flash-сообщением
const flashCookieName = "gotodo_flash"

// Flash представляет одноразовое сообщение для следующего рендера страницы
type Flash struct {
	Category string // success | error | info
	Message  string
}

// SetFlash сохраняет flash-сообщение в cookie
// Сообщение показывается один раз на следующей отрендеренной странице
func SetFlash(w http.ResponseWriter, category, message string) {
	value := url.QueryEscape(category + "|" + message)
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// PopFlash читает и сразу очищает flash cookie
// Возвращает nil если сообщения нет или оно не парсится
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	// Очищаем cookie независимо от результата парсинга
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	category, message, ok := strings.Cut(value, "|")
	if !ok || message == "" {
		return nil
	}

	return &Flash{Category: category, Message: message}
}
