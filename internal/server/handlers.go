package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fastkit/cli/internal/tasks"
)

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Task Management API",
		"docs":    "/docs",
		"version": APIVersion,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in tasks.TaskCreate
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err, 0)
		return
	}

	t, err := s.svc.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	verr := &tasks.ValidationError{}
	skip := queryInt(r, "skip", tasks.DefaultSkip, verr)
	limit := queryInt(r, "limit", tasks.DefaultLimit, verr)
	if len(verr.Fields) > 0 {
		s.writeError(w, r, verr, 0)
		return
	}

	list, err := s.svc.List(r.Context(), skip, limit)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}

	t, err := s.svc.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, id)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleReplace(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}

	var in tasks.TaskUpdate
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err, id)
		return
	}

	t, err := s.svc.Replace(r.Context(), id, in)
	if err != nil {
		s.writeError(w, r, err, id)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}

	var in tasks.TaskPatch
	if err := decodeBody(r, &in); err != nil {
		s.writeError(w, r, err, id)
		return
	}

	t, err := s.svc.Patch(r.Context(), id, in)
	if err != nil {
		s.writeError(w, r, err, id)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		s.writeError(w, r, err, 0)
		return
	}

	if err := s.svc.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// taskID parses the {id} path segment.
func taskID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, tasks.NewFieldError([]string{"path", "task_id"},
			"Input should be a valid integer, unable to parse string as an integer", "int_parsing")
	}
	return id, nil
}

// queryInt reads an integer query parameter, recording parse failures in verr.
func queryInt(r *http.Request, name string, def int, verr *tasks.ValidationError) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		verr.Fields = append(verr.Fields, tasks.FieldError{
			Location: []string{"query", name},
			Message:  "Input should be a valid integer, unable to parse string as an integer",
			Type:     "int_parsing",
		})
		return def
	}
	return v
}

// writeError maps service errors to responses. id is used for the 404 message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, id int64) {
	var verr *tasks.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": verr.Fields})
	case errors.Is(err, tasks.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Task with id "+strconv.FormatInt(id, 10)+" not found")
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()), "err", err)
		writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
