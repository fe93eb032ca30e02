package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Note struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID      `gorm:"type:uuid;not null;index"`
	ObjectId    *uuid.UUID     `gorm:"type:uuid;index"`
	Title       string         `gorm:"type:text;not null"`
	Content     datatypes.JSON `gorm:"type:jsonb"`
	NoteKind    string         `gorm:"type:text;not null;default:general"`
	Pinned      bool           `gorm:"not null;default:false"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time
}

func (Note) TableName() string {
	return "notes"
}
