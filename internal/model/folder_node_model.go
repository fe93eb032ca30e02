package model

import (
	"time"

	"github.com/google/uuid"
)

type FolderNode struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentId    *uuid.UUID `gorm:"type:uuid"`
	NodeType    string     `gorm:"type:text;not null"`
	Category    *string    `gorm:"type:text"`
	ObjectType  *string    `gorm:"type:text"`
	Title       string     `gorm:"type:text;not null"`
	SortOrder   int        `gorm:"not null;default:0"`
	IsCollapsed bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (FolderNode) TableName() string {
	return "folder_nodes"
}
