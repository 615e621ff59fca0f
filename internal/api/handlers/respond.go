// Package handlers содержит общие помощники HTTP-слоя:
// декодирование JSON и формирование ответов с машинными кодами причин.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodySize предел размера тела запроса (64 KiB достаточно для любой формы)
const maxBodySize = 64 << 10

// ErrorBody машиночитаемая причина отказа плюс сообщение для гостя
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse тело ответа с ошибкой
// Info несет дополнительные детали (например, requested/available/capacity)
type ErrorResponse struct {
	Error ErrorBody   `json:"error"`
	Info  interface{} `json:"info,omitempty"`
}

// DecodeJSON читает JSON тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	defer io.Copy(io.Discard, body)

	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("handlers: decode json: %w", err)
	}
	// Второй Decode должен вернуть EOF: лишние данные в теле — ошибка
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("handlers: unexpected data after json body")
	}
	return nil
}

// RespondJSON пишет произвольный JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ответ с кодом причины и сообщением
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// RespondErrorWithInfo пишет ответ с кодом причины и дополнительными деталями
func RespondErrorWithInfo(w http.ResponseWriter, status int, code, message string, info interface{}) {
	RespondJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}, Info: info})
}

// RespondInternalError пишет стандартный ответ о внутренней ошибке
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "InternalError", "Errore interno del server.")
}
