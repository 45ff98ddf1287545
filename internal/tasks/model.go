// Package tasks implements the Task Management sample application: model, validation,
// storage and the service used by the HTTP layer.
package tasks

import (
	"bytes"
	"encoding/json"
	"time"
)

// Status is the workflow state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Task is a stored task.
type Task struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Description *string    `json:"description" gorm:"size:1000"`
	Status      Status     `json:"status" gorm:"size:20;not null;default:todo"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`
	UpdatedAt   *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// TaskCreate is the body of POST /tasks/. An absent status defaults to todo;
// an explicit null or empty status is invalid.
type TaskCreate struct {
	Title       string           `json:"title" validate:"required,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Status      Optional[Status] `json:"status" validate:"-"`
}

// TaskUpdate is the body of PUT /tasks/{id}. Every field is replaced.
type TaskUpdate struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      Status  `json:"status" validate:"required,oneof=todo in_progress done"`
}

// TaskPatch is the body of PATCH /tasks/{id}. Only fields present in the body change.
type TaskPatch struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Status      Optional[Status] `json:"status"`
}

// Optional records whether a JSON field was present and whether it was null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// UnmarshalJSON implements json.Unmarshaler. It only runs for keys present in the body.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
