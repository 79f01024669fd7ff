package model

import (
	"time"

	"taskforperks.com/taskforperks/internal/constants"
)

// Claim is one helper's offer against a task. The composite index on
// (task_id, status) keeps the pending-count aggregate cheap.
type Claim struct {
	ID        string                `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string                `gorm:"size:36;not null;index:idx_claims_task_status,priority:1" json:"taskId"`
	HelperID  string                `gorm:"size:36;not null" json:"helperId"`
	Fee       float64               `gorm:"not null" json:"fee"`
	Notes     string                `json:"notes,omitempty"`
	Status    constants.ClaimStatus `gorm:"type:varchar(20);not null;index:idx_claims_task_status,priority:2" json:"status"`
	ExpiresAt time.Time             `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time             `json:"createdAt"`
}
