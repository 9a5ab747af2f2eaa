package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type jsonResponse map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		logger.Error("failed to write error response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	logger.Error("internal server error", slog.String("path", r.URL.Path), slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, logger, http.StatusInternalServerError, message)
}

func notFoundResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, message string) {
	if message == "" {
		message = "the requested resource could not be found"
	}
	errorResponse(w, r, logger, http.StatusNotFound, message)
}

func unavailableResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	errorResponse(w, r, logger, http.StatusServiceUnavailable, "no snapshot has been built yet")
}
