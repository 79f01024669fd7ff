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

type ClaimRepository struct {
	db *gorm.DB
}

var (
	ErrTaskClosed       = errors.New("task is not open")
	ErrVersionMismatch  = errors.New("task version mismatch")
	ErrMaxClaimsReached = errors.New("max pending claims reached")
)

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// SubmitClaim runs the whole read-validate-write sequence in one
// transaction. The pending count is derived live inside the transaction
// rather than kept as a counter column, and the version bump is a
// conditional update keyed on the version read by the caller: zero rows
// affected means a concurrent writer got there first, even after the
// in-transaction version check passed.
func (r *ClaimRepository) SubmitClaim(
	ctx context.Context,
	taskID string,
	helperID string,
	fee float64,
	notes string,
	clientVersion uint,
) (*model.Claim, error) {
	var claim *model.Claim

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if task.Status != constants.TaskOpen {
			return ErrTaskClosed
		}

		// Version before capacity: a stale caller gets the refetchable
		// signal, not a capacity answer computed against state it has
		// never seen.
		if task.Version != clientVersion {
			return ErrVersionMismatch
		}

		var pending int64
		if err := tx.Model(&model.Claim{}).
			Where("task_id = ? AND status = ?", taskID, constants.ClaimPending).
			Count(&pending).Error; err != nil {
			return err
		}

		if pending >= int64(task.MaxClaims) {
			return ErrMaxClaimsReached
		}

		now := time.Now().UTC()
		claim = &model.Claim{
			ID:        uuid.NewString(),
			TaskID:    taskID,
			HelperID:  helperID,
			Fee:       fee,
			Notes:     notes,
			Status:    constants.ClaimPending,
			ExpiresAt: now.Add(constants.ClaimTTL),
			CreatedAt: now,
		}

		if err := tx.Create(claim).Error; err != nil {
			return err
		}

		res := tx.Model(&model.Task{}).
			Where("id = ? AND version = ?", taskID, clientVersion).
			Update("version", gorm.Expr("version + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionMismatch
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return claim, nil
}

// ExpirePending flips stale PENDING claims to EXPIRED and reports the
// tasks whose claim pools changed.
func (r *ClaimRepository) ExpirePending(ctx context.Context, now time.Time) ([]string, error) {
	var taskIDs []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Claim{}).
			Distinct("task_id").
			Where("status = ? AND expires_at <= ?", constants.ClaimPending, now).
			Pluck("task_id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) == 0 {
			return nil
		}

		return tx.Model(&model.Claim{}).
			Where("status = ? AND expires_at <= ?", constants.ClaimPending, now).
			Update("status", constants.ClaimExpired).Error
	})
	if err != nil {
		return nil, err
	}

	return taskIDs, nil
}
