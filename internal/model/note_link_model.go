package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteLink records an @object mention or #tag occurrence inside note content.
type NoteLink struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId     uuid.UUID `gorm:"type:uuid;not null;index"`
	TargetType string    `gorm:"type:text;not null"`
	TargetId   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (NoteLink) TableName() string {
	return "note_links"
}
