package entity

import (
	"time"

	"github.com/google/uuid"
)

type NoteLink struct {
	Id         uuid.UUID
	NoteId     uuid.UUID
	TargetType string
	TargetId   uuid.UUID
	CreatedAt  time.Time
}
