package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fastkit/cli/internal/tasks"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes data as a JSON response with status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// writeDetail writes {"detail": msg}.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

// decodeBody decodes a single JSON value into dst. Failures, including data after
// the value, are returned as a *tasks.ValidationError.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil {
		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return tasks.NewFieldError([]string{"body", fmt.Sprint(dec.InputOffset())}, "JSON decode error", "json_invalid")
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return tasks.NewFieldError([]string{"body"}, "Field required", "missing")
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		return tasks.NewFieldError(loc, fmt.Sprintf("Input should be a valid %s", typeErr.Type.Kind()), typeErr.Type.Kind().String()+"_type")
	case errors.As(err, &syntaxErr):
		return tasks.NewFieldError([]string{"body", fmt.Sprint(syntaxErr.Offset)}, "JSON decode error", "json_invalid")
	default:
		return tasks.NewFieldError([]string{"body"}, "JSON decode error", "json_invalid")
	}
}
