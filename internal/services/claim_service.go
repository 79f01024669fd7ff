package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"taskforperks.com/taskforperks/internal/cache"
	"taskforperks.com/taskforperks/internal/constants"
	apperrors "taskforperks.com/taskforperks/internal/errors"
	model "taskforperks.com/taskforperks/internal/models"
	"taskforperks.com/taskforperks/internal/notify"
	repository "taskforperks.com/taskforperks/internal/repositories"
)

type SubmitClaimInput struct {
	HelperID      string
	Fee           float64
	Notes         string
	ClientVersion uint
}

type ClaimService struct {
	claims      *repository.ClaimRepository
	publisher   notify.Publisher
	invalidator cache.Invalidator
}

func NewClaimService(
	claims *repository.ClaimRepository,
	publisher notify.Publisher,
	invalidator cache.Invalidator,
) *ClaimService {
	return &ClaimService{
		claims:      claims,
		publisher:   publisher,
		invalidator: invalidator,
	}
}

// SubmitClaim validates the request shape, runs the transactional claim
// protocol, and on commit fires the change notification and drops the
// cached task detail. Rejections leave no visible effect.
func (s *ClaimService) SubmitClaim(ctx context.Context, taskID string, in SubmitClaimInput) (*model.Claim, error) {
	if err := validateSubmitClaim(taskID, in); err != nil {
		return nil, err
	}

	claim, err := s.claims.SubmitClaim(ctx, taskID, in.HelperID, in.Fee, in.Notes, in.ClientVersion)
	if err != nil {
		return nil, mapClaimError(err)
	}

	s.afterCommit(ctx, taskID)

	return claim, nil
}

func validateSubmitClaim(taskID string, in SubmitClaimInput) error {
	if taskID == "" {
		return apperrors.InvalidBody("task id is required")
	}
	if in.HelperID == "" {
		return apperrors.InvalidBody("helperId is required")
	}
	if _, err := uuid.Parse(in.HelperID); err != nil {
		return apperrors.InvalidBody("helperId must be a valid UUID")
	}
	if in.Fee <= 0 {
		return apperrors.InvalidBody("fee must be positive")
	}
	if len(in.Notes) > constants.MaxNotesLength {
		return apperrors.InvalidBody("notes must not exceed 10000 characters")
	}
	return nil
}

func mapClaimError(err error) error {
	switch {
	case errors.Is(err, repository.ErrTaskNotFound):
		return apperrors.ErrTaskNotFound
	case errors.Is(err, repository.ErrTaskClosed):
		return apperrors.ErrTaskClosed
	case errors.Is(err, repository.ErrVersionMismatch):
		return apperrors.ErrVersionMismatch
	case errors.Is(err, repository.ErrMaxClaimsReached):
		return apperrors.ErrMaxClaimsReached
	default:
		log.Printf("submit claim failed: %v", err)
		return apperrors.ErrUnknown
	}
}

// afterCommit runs outside the transaction; failures here must not undo
// a committed claim, so they are logged and swallowed.
func (s *ClaimService) afterCommit(ctx context.Context, taskID string) {
	event := notify.TaskEvent{TaskID: taskID, Event: notify.EventClaimCreated}
	if err := s.publisher.PublishTaskChanged(ctx, event); err != nil {
		log.Printf("failed to publish task change for %s: %v", taskID, err)
	}

	if err := s.invalidator.InvalidateTaskDetail(ctx, taskID); err != nil {
		log.Printf("failed to invalidate task detail cache for %s: %v", taskID, err)
	}
}
