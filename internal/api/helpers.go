package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	errInternalRuText = "Внутренняя ошибка"
	errBadBodyRuText  = "Некорректное тело запроса"
)

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SendErr writes msg to the client; client mistakes are logged as warnings, server failures as errors.
func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	level := slog.LevelError
	if code < http.StatusInternalServerError {
		level = slog.LevelWarn
	}

	slog.Log(ctx, level, "api error", "error", err, "code", code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: err.Error()})
	if err != nil {
		slog.ErrorContext(ctx, "api error", "error", err, "code", http.StatusInternalServerError)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "")
		return
	}
}
