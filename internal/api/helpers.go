package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

const errInternalText = "Internal server error."

type ResponseError struct {
	Message string `json:"message"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{Message: msg})
	if err != nil {
		slog.ErrorContext(ctx, "write error response", "error", err)
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	b, err := json.Marshal(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_, err = w.Write(append(b, '\n'))
	if err != nil {
		slog.ErrorContext(ctx, "write response", "error", err)
	}
}
