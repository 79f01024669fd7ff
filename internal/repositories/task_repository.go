package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskforperks.com/taskforperks/internal/constants"
	model "taskforperks.com/taskforperks/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

var ErrTaskNotFound = errors.New("task not found")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask belongs to the task-posting flow; the claim core only reads
// tasks. It exists so tests and seed tooling can put OPEN tasks in place.
func (r *TaskRepository) CreateTask(ctx context.Context, title string, maxClaims int) (*model.Task, error) {
	if maxClaims <= 0 {
		return nil, errors.New("maxClaims must be positive")
	}

	task := &model.Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    constants.TaskOpen,
		Version:   0,
		MaxClaims: maxClaims,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) CountPendingClaims(ctx context.Context, taskID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Claim{}).
		Where("task_id = ? AND status = ?", taskID, constants.ClaimPending).
		Count(&count).Error
	return count, err
}
