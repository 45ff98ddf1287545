package tasks

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
)

// Pagination defaults for List.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// Service implements the task operations on top of a Repository.
type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service over repo.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:     repo,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in and stores a new task. Status defaults to todo.
func (s *Service) Create(ctx context.Context, in TaskCreate) (*Task, error) {
	verr := &ValidationError{}
	if err := s.validate.Struct(in); err != nil {
		translated := translate(err)
		ve, ok := translated.(*ValidationError)
		if !ok {
			return nil, translated
		}
		verr.Fields = append(verr.Fields, ve.Fields...)
	}

	status := StatusTodo
	if in.Status.Set {
		if fe := s.validateStatus(in.Status); fe != nil {
			verr.Fields = append(verr.Fields, *fe)
		}
		status = in.Status.Value
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	t := &Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns up to limit tasks after skipping skip. Negative values are rejected.
func (s *Service) List(ctx context.Context, skip, limit int) ([]Task, error) {
	verr := &ValidationError{}
	if skip < 0 {
		verr.Fields = append(verr.Fields, FieldError{
			Location: []string{"query", "skip"},
			Message:  "Input should be greater than or equal to 0",
			Type:     "greater_than_equal",
		})
	}
	if limit < 0 {
		verr.Fields = append(verr.Fields, FieldError{
			Location: []string{"query", "limit"},
			Message:  "Input should be greater than or equal to 0",
			Type:     "greater_than_equal",
		})
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return s.repo.List(ctx, skip, limit)
}

// Get returns the task with id or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Task, error) {
	return s.repo.Get(ctx, id)
}

// Replace applies a full update: title, description and status all change.
func (s *Service) Replace(ctx context.Context, id int64, in TaskUpdate) (*Task, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, translate(err)
	}

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t.Title = in.Title
	t.Description = in.Description
	t.Status = in.Status
	t.UpdatedAt = &now

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Patch applies a partial update: only fields present in in change.
// Title and status may not be null; description may be cleared with null.
func (s *Service) Patch(ctx context.Context, id int64, in TaskPatch) (*Task, error) {
	if err := s.validatePatch(in); err != nil {
		return nil, err
	}

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title.Set {
		t.Title = in.Title.Value
	}
	if in.Description.Set {
		if in.Description.Null {
			t.Description = nil
		} else {
			d := in.Description.Value
			t.Description = &d
		}
	}
	if in.Status.Set {
		t.Status = in.Status.Value
	}

	now := s.now()
	t.UpdatedAt = &now

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) validatePatch(in TaskPatch) error {
	verr := &ValidationError{}
	add := func(fe *FieldError) {
		if fe != nil {
			verr.Fields = append(verr.Fields, *fe)
		}
	}

	if in.Title.Set {
		loc := []string{"body", "title"}
		if in.Title.Null {
			add(&FieldError{Location: loc, Message: "Input should be a valid string", Type: "string_type"})
		} else {
			add(validateVar(s.validate, loc, in.Title.Value, "min=1,max=200"))
		}
	}
	if in.Description.Set && !in.Description.Null {
		add(validateVar(s.validate, []string{"body", "description"}, in.Description.Value, "max=1000"))
	}
	if in.Status.Set {
		add(s.validateStatus(in.Status))
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// validateStatus checks a status that is present in the body. Null and "" are rejected.
func (s *Service) validateStatus(st Optional[Status]) *FieldError {
	loc := []string{"body", "status"}
	if st.Null {
		return &FieldError{Location: loc, Message: "Input should be 'todo', 'in_progress' or 'done'", Type: "enum"}
	}
	return validateVar(s.validate, loc, string(st.Value), "oneof=todo in_progress done")
}

// Delete removes the task with id or returns ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
