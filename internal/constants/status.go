package constants

import "time"

type TaskStatus string

const (
	TaskOpen       TaskStatus = "OPEN"
	TaskClaimed    TaskStatus = "CLAIMED"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

type ClaimStatus string

const (
	ClaimPending   ClaimStatus = "PENDING"
	ClaimApproved  ClaimStatus = "APPROVED"
	ClaimRejected  ClaimStatus = "REJECTED"
	ClaimWithdrawn ClaimStatus = "WITHDRAWN"
	ClaimExpired   ClaimStatus = "EXPIRED"
)

// ClaimTTL is the window during which a pending claim stays valid.
const ClaimTTL = 24 * time.Hour

// MaxNotesLength caps the free-text notes on a claim.
const MaxNotesLength = 10000
