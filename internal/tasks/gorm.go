package tasks

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormRepository stores tasks through GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a repository over db.
func NewGormRepository(db *gorm.DB) *GormRepository {
	if db == nil {
		panic("tasks: NewGormRepository requires a database")
	}
	return &GormRepository{db: db}
}

// Migrate creates or updates the tasks table.
func (r *GormRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&Task{}); err != nil {
		return fmt.Errorf("migrating tasks table: %w", err)
	}
	return nil
}

// Insert implements Repository.
func (r *GormRepository) Insert(ctx context.Context, t *Task) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// List implements Repository.
func (r *GormRepository) List(ctx context.Context, offset, limit int) ([]Task, error) {
	tasks := []Task{}
	if limit <= 0 {
		return tasks, nil
	}
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return tasks, nil
}

// Get implements Repository.
func (r *GormRepository) Get(ctx context.Context, id int64) (*Task, error) {
	var t Task
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting task %d: %w", id, err)
	}
	return &t, nil
}

// Update implements Repository. All columns are written, including nulls.
// Some drivers (MySQL) only count rows whose values changed, so a zero count is
// confirmed with a lookup before reporting ErrNotFound.
func (r *GormRepository) Update(ctx context.Context, t *Task) error {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id = ?", t.ID).
		Select("title", "description", "status", "updated_at").
		Updates(t)
	if res.Error != nil {
		return fmt.Errorf("updating task %d: %w", t.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		_, err := r.Get(ctx, t.ID)
		return err
	}
	return nil
}

// Delete implements Repository.
func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting task %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
