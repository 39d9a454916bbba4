package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
	"github.com/sbilibin2017/gw-travel-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-travel-planner/internal/models"
	"github.com/sbilibin2017/gw-travel-planner/internal/services"
)

const (
	msgInternal       = "Internal server error"
	msgInvalidBody    = "Invalid request body"
	msgTokenRequired  = "Access token required"
	maxRequestBodyLen = 1 << 20
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.GetRequestIDFromContext(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"err", err,
	)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyLen)).Decode(dst)
}

// validationMessage turns "validation failed: title is required" into "Title is required".
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), services.ErrValidation.Error()+": ")
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
