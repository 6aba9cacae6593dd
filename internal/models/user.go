package models

import "time"

// User представляет пользователя со встроенными списками задач.
// Хранится целиком как один JSON документ, ключ — username.
type User struct {
	Username     string    `json:"username"`     // уникальный username, immutable
	PasswordHash string    `json:"password"`     // bcrypt хеш пароля, никогда plaintext
	Todos        []Task    `json:"todos"`        // активные задачи в порядке добавления
	Completed    []Task    `json:"completed"`    // завершенные задачи в порядке завершения
	LastTaskID   int64     `json:"last_task_id"` // счетчик id задач, монотонный, id не переиспользуются
	CreatedAt    time.Time `json:"created_at"`   // время регистрации
}

// Task представляет одну задачу внутри документа пользователя.
// Ровно одно из полей CreatedAt/CompletedAt присутствует:
// CreatedAt у активной задачи, CompletedAt у завершенной.
type Task struct {
	CreatedAt   *time.Time `json:"created_at,omitempty"`   // время добавления (активная задача)
	CompletedAt *time.Time `json:"completed_at,omitempty"` // время завершения (завершенная задача)
	Text        string     `json:"text"`                   // текст задачи, непустой
	ID          int64      `json:"id"`                     // уникален в пределах пользователя (todos + completed)
}

// Stats содержит счетчики задач пользователя для отображения.
type Stats struct {
	ActiveCount    int `json:"active_count"`
	CompletedCount int `json:"completed_count"`
}

// Active reports whether the task is still in the todos list.
func (t *Task) Active() bool {
	return t.CompletedAt == nil
}
