// internal/httpapi/respond.go
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/models"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the domain error taxonomy onto transport codes:
// not-found → 404, any other business rejection → 400, everything
// else is an unrecovered fault → 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrTaskNotFound),
		errors.Is(err, models.ErrSubtaskNotFound),
		errors.Is(err, models.ErrAttachmentNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case models.IsBusinessError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		log.Printf("[ERROR] internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
