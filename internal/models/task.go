package model

import (
	"time"

	"taskforperks.com/taskforperks/internal/constants"
)

type Task struct {
	ID        string               `gorm:"primaryKey;size:36" json:"id"`
	Title     string               `gorm:"not null" json:"title"`
	Status    constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	Version   uint                 `gorm:"not null;default:0" json:"version"`
	MaxClaims int                  `gorm:"not null" json:"maxClaims"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}
