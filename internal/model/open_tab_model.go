package model

import "github.com/google/uuid"

// OpenTab exists for UI session restore. The schema ships it but no route
// reads or writes it; tab state lives client-side only.
type OpenTab struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID `gorm:"type:uuid;not null;index"`
	TargetType  string    `gorm:"type:text;not null"`
	TargetId    uuid.UUID `gorm:"type:uuid;not null"`
	SortOrder   int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:false"`
}

func (OpenTab) TableName() string {
	return "open_tabs"
}
