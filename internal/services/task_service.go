package services

import (
	"context"
	"errors"
	"log"

	apperrors "taskforperks.com/taskforperks/internal/errors"
	model "taskforperks.com/taskforperks/internal/models"
	repository "taskforperks.com/taskforperks/internal/repositories"
)

type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// GetTask returns the task with its live pending-claim count so a caller
// rejected with a conflict can refetch and decide whether to retry.
func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, int64, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, 0, apperrors.ErrTaskNotFound
		}
		log.Printf("get task %s failed: %v", id, err)
		return nil, 0, apperrors.ErrUnknown
	}

	pending, err := s.tasks.CountPendingClaims(ctx, id)
	if err != nil {
		log.Printf("count pending claims for %s failed: %v", id, err)
		return nil, 0, apperrors.ErrUnknown
	}

	return task, pending, nil
}
