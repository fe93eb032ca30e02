package model

import (
	"time"

	"github.com/google/uuid"
)

type ActionItem struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title           string     `gorm:"type:text;not null"`
	Description     *string    `gorm:"type:text"`
	Status          string     `gorm:"type:text;not null;default:todo"`
	DueDate         *time.Time
	OwnerPersonId   *uuid.UUID `gorm:"type:uuid"`
	RelatedObjectId *uuid.UUID `gorm:"type:uuid;index"`
	SourceNoteId    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time
}

func (ActionItem) TableName() string {
	return "action_items"
}
