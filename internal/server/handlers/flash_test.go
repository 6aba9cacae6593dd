package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_SetAndPop(t *testing.T) {
	// SetFlash пишет cookie в один ответ
	w := httptest.NewRecorder()
	SetFlash(w, "success", "Task added successfully!")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, flashCookieName, cookies[0].Name)

	// PopFlash читает его из следующего запроса
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()

	flash := PopFlash(w2, req)
	require.NotNil(t, flash)
	assert.Equal(t, "success", flash.Category)
	assert.Equal(t, "Task added successfully!", flash.Message)

	// И при этом очищает cookie
	var cleared bool
	for _, cookie := range w2.Result().Cookies() {
		if cookie.Name == flashCookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestPopFlash_NoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	assert.Nil(t, PopFlash(w, req))
	// Нечего очищать
	assert.Empty(t, w.Result().Cookies())
}

func TestPopFlash_MalformedValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "no separator", value: url.QueryEscape("just a message")},
		{name: "empty message", value: url.QueryEscape("error|")},
		{name: "bad escaping", value: "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: flashCookieName, Value: tt.value})
			w := httptest.NewRecorder()

			assert.Nil(t, PopFlash(w, req))
		})
	}
}

func TestSetFlash_EscapesSpecialChars(t *testing.T) {
	w := httptest.NewRecorder()
	SetFlash(w, "info", "50% done & counting")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	flash := PopFlash(httptest.NewRecorder(), req)
	require.NotNil(t, flash)
	assert.Equal(t, "50% done & counting", flash.Message)
}
