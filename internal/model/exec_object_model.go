package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExecObject backs the objects table: priorities, projects, people,
// meetings and note topics all share this row shape.
type ExecObject struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID      `gorm:"type:uuid;not null;index"`
	FolderId    *uuid.UUID     `gorm:"type:uuid"`
	ObjectType  string         `gorm:"type:text;not null"`
	Title       string         `gorm:"type:text;not null"`
	Description *string        `gorm:"type:text"`
	Status      *string        `gorm:"type:text"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time
}

func (ExecObject) TableName() string {
	return "objects"
}
