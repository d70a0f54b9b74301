package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

func SendJSON(w http.ResponseWriter, status int, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	return err
}

func sendJSONOrLog(w http.ResponseWriter, logger logrus.FieldLogger, status int, v any) {
	if err := SendJSON(w, status, v); err != nil {
		logger.WithError(err).Error("unable to send response")
	}
}

func sendSuccess(w http.ResponseWriter, logger logrus.FieldLogger, status int, data any, message string) {
	sendJSONOrLog(w, logger, status, envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func sendError(w http.ResponseWriter, logger logrus.FieldLogger, status int, message string, details ...string) {
	sendJSONOrLog(w, logger, status, envelope{
		Success: false,
		Error:   message,
		Details: details,
	})
}
