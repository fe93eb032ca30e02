package model

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:text;not null"`
	Color       string    `gorm:"type:text;not null;default:#6366f1"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Tag) TableName() string {
	return "tags"
}
