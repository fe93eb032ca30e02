package model

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
