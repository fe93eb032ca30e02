package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActionItem struct {
	Id              uuid.UUID
	WorkspaceId     uuid.UUID
	Title           string
	Description     *string
	Status          string
	DueDate         *time.Time
	OwnerPersonId   *uuid.UUID
	RelatedObjectId *uuid.UUID
	SourceNoteId    *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
