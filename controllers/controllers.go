package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"playerhub_server/apperror"

	"github.com/go-playground/validator/v10"
)

// validate checks request DTOs against their struct tags.
var validate = validator.New()

// defaultListLimit is used when the limit query parameter is absent or
// unparsable.
const defaultListLimit = 10

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError maps a service error onto the response: client faults keep
// their message, server faults get a generic body and the cause is logged.
func writeError(w http.ResponseWriter, err error) {
	status := apperror.Status(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
	}
	writeJSON(w, status, map[string]string{"message": apperror.Message(err)})
}

// parseLimit reads the limit query parameter, falling back to the default
// for missing or invalid values.
func parseLimit(r *http.Request) int32 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit
	}
	limit, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || limit <= 0 {
		return defaultListLimit
	}
	return int32(limit)
}
