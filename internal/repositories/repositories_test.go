package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskforperks.com/taskforperks/internal/constants"
	model "taskforperks.com/taskforperks/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Task{}, &model.Claim{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func insertClaim(t *testing.T, db *gorm.DB, taskID string, status constants.ClaimStatus, expiresAt time.Time) *model.Claim {
	claim := &model.Claim{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		HelperID:  uuid.NewString(),
		Fee:       10,
		Status:    status,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.Create(claim).Error; err != nil {
		t.Fatalf("failed to insert claim: %v", err)
	}
	return claim
}

func TestTaskRepository_CreateTask(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	task, err := repo.CreateTask(context.Background(), "Assemble a wardrobe", 3)
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}

	if task.Status != constants.TaskOpen {
		t.Errorf("expected status %s, got %s", constants.TaskOpen, task.Status)
	}
	if task.Version != 0 {
		t.Errorf("expected version 0, got %d", task.Version)
	}
	if task.MaxClaims != 3 {
		t.Errorf("expected maxClaims 3, got %d", task.MaxClaims)
	}

	if _, err := repo.CreateTask(context.Background(), "No capacity", 0); err == nil {
		t.Error("expected error for non-positive maxClaims")
	}
}

func TestTaskRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.NewString())
	if err != ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepository_CountPendingClaims(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	task, err := repo.CreateTask(context.Background(), "Paint the fence", 5)
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}

	future := time.Now().UTC().Add(constants.ClaimTTL)
	insertClaim(t, db, task.ID, constants.ClaimPending, future)
	insertClaim(t, db, task.ID, constants.ClaimPending, future)
	insertClaim(t, db, task.ID, constants.ClaimRejected, future)
	insertClaim(t, db, task.ID, constants.ClaimExpired, future)

	count, err := repo.CountPendingClaims(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 pending claims, got %d", count)
	}
}

func TestClaimRepository_SubmitClaim_CASRace(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	claims := NewClaimRepository(db)

	task, err := tasks.CreateTask(context.Background(), "Move some boxes", 2)
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}

	if _, err := claims.SubmitClaim(context.Background(), task.ID, uuid.NewString(), 25, "", 0); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	// capacity remains but the presented version is now stale
	_, err = claims.SubmitClaim(context.Background(), task.ID, uuid.NewString(), 30, "", 0)
	if err != ErrVersionMismatch {
		t.Errorf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestClaimRepository_ExpirePending(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	claims := NewClaimRepository(db)
	ctx := context.Background()

	taskA, _ := tasks.CreateTask(ctx, "Water the plants", 2)
	taskB, _ := tasks.CreateTask(ctx, "Fix the bike", 2)

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(constants.ClaimTTL)

	staleA := insertClaim(t, db, taskA.ID, constants.ClaimPending, past)
	insertClaim(t, db, taskA.ID, constants.ClaimPending, future)
	staleB := insertClaim(t, db, taskB.ID, constants.ClaimPending, past)
	approved := insertClaim(t, db, taskB.ID, constants.ClaimApproved, past)

	taskIDs, err := claims.ExpirePending(ctx, time.Now().UTC())
	if err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	if len(taskIDs) != 2 {
		t.Errorf("expected 2 affected tasks, got %d", len(taskIDs))
	}

	for _, id := range []string{staleA.ID, staleB.ID} {
		var claim model.Claim
		if err := db.First(&claim, "id = ?", id).Error; err != nil {
			t.Fatalf("failed to reload claim: %v", err)
		}
		if claim.Status != constants.ClaimExpired {
			t.Errorf("claim %s: expected EXPIRED, got %s", id, claim.Status)
		}
	}

	var approvedClaim model.Claim
	if err := db.First(&approvedClaim, "id = ?", approved.ID).Error; err != nil {
		t.Fatalf("failed to reload claim: %v", err)
	}
	if approvedClaim.Status != constants.ClaimApproved {
		t.Errorf("approved claim must not be touched, got %s", approvedClaim.Status)
	}

	// a second sweep finds nothing left to expire
	taskIDs, err = claims.ExpirePending(ctx, time.Now().UTC())
	if err != nil {
		t.Fatalf("second expire failed: %v", err)
	}
	if len(taskIDs) != 0 {
		t.Errorf("expected no affected tasks on second sweep, got %d", len(taskIDs))
	}
}
