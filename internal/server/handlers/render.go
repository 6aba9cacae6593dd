package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/vkazakov/gotodo/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// templates парсится один раз при старте процесса
var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// loginPageData данные для страниц логина и регистрации
type loginPageData struct {
	Flash *Flash
}

// indexPageData данные для главной страницы со списками задач
type indexPageData struct {
	Flash     *Flash
	Stats     *models.Stats
	Username  string
	Todos     []models.Task
	Completed []models.Task
}

// renderTemplate рендерит именованный шаблон
// Ошибка рендера логируется; заголовки к этому моменту уже могли уйти клиенту
func renderTemplate(logger *slog.Logger, w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("failed to render template", slog.String("template", name), slog.Any("error", err))
	}
}
