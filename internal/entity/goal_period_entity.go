package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type GoalPeriod struct {
	Id              uuid.UUID
	WorkspaceId     uuid.UUID
	PeriodType      string
	PeriodStartDate time.Time
	Summary         *string
	LinkedItems     json.RawMessage
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
