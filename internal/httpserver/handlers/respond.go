package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/httpserver/deps"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	statusSuccess = "success"
	statusFail    = "fail"

	maxBodyBytes = 1 << 20
)

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func success(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Status: statusSuccess, Message: message, Data: data})
}

func fail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Status: statusFail, Message: message})
}

var errEmptyBody = errors.New("empty body")

// decodePayload reads a BookPayload from the request body.
// The body must hold exactly one JSON value; an empty, malformed or
// trailing-data body is reported as an invalid-body validation error.
func decodePayload(w http.ResponseWriter, r *http.Request, action domain.Action) (domain.BookPayload, error) {
	invalid := func(err error) error {
		return &domain.ValidationError{Action: action, Reason: domain.ReasonInvalidBody, Err: err}
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return domain.BookPayload{}, invalid(err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.BookPayload{}, invalid(errEmptyBody)
	}

	var p domain.BookPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.BookPayload{}, invalid(err)
	}
	return p, nil
}

// requestLogger tags every entry with the chi request id.
func requestLogger(d deps.Deps, r *http.Request) logger.Logger {
	return d.Logger.With(logger.String("request_id", middleware.GetReqID(r.Context())))
}

// writeError maps domain errors to status codes and localized messages.
func writeError(w http.ResponseWriter, r *http.Request, d deps.Deps, action domain.Action, err error) {
	log := requestLogger(d, r)
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Debug("request rejected",
			logger.String("action", string(action)),
			logger.String("reason", string(verr.Reason)),
			logger.Error(err))
		fail(w, http.StatusBadRequest, d.Messages.ForValidation(verr))
	case errors.Is(err, domain.ErrBookNotFound):
		fail(w, http.StatusNotFound, d.Messages.NotFound(action))
	default:
		log.Error("request failed",
			logger.String("action", string(action)),
			logger.Error(err))
		fail(w, http.StatusInternalServerError, d.Messages.Failed(action))
	}
}
