package server

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	codeValidation         = "VALIDATION_ERROR"
	codeUnauthorized       = "UNAUTHORIZED"
	codeInvalidToken       = "INVALID_TOKEN"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeForbidden          = "FORBIDDEN"
	codeNotFound           = "NOT_FOUND"
	codeRateLimited        = "RATE_LIMITED"
	codeAiDisabled         = "AI_DISABLED"
	codeServerError        = "SERVER_ERROR"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, envelope{Success: false, Error: &apiError{Code: code, Message: message}})
}

func writeServerError(w http.ResponseWriter, err error) {
	log.Errorf("request failed: %v", err)
	writeError(w, http.StatusInternalServerError, codeServerError, "サーバーエラーが発生しました")
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}
