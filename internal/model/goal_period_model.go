package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GoalPeriod struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	PeriodType      string         `gorm:"type:text;not null"`
	PeriodStartDate time.Time      `gorm:"not null"`
	Summary         *string        `gorm:"type:text"`
	LinkedItems     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time
}

func (GoalPeriod) TableName() string {
	return "goal_periods"
}
