package entity

import (
	"time"

	"github.com/google/uuid"
)

type FolderNode struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	ParentId    *uuid.UUID
	NodeType    string
	Category    *string
	ObjectType  *string
	Title       string
	SortOrder   int
	IsCollapsed bool
	CreatedAt   time.Time
}
