package response

import (
	"encoding/json"
	"net/http"
)

// The API speaks three envelopes: {"data": ...} for records and stats,
// {"user": ...} for auth, and {"error": ...} for failures.

type errorBody struct {
	Error interface{} `json:"error"`
}

// FieldErrors carries per-field validation detail.
type FieldErrors struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func Data(w http.ResponseWriter, statusCode int, v interface{}) {
	JSON(w, statusCode, map[string]interface{}{"data": v})
}

func User(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, map[string]interface{}{"user": v})
}

func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, errorBody{Error: message})
}

func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, errorBody{Error: FieldErrors{
		Message: "validation failed",
		Fields:  fields,
	}})
}

func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

func InternalServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Server error")
}
