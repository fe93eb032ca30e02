package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExecObject is the generic "thing you track": priority, project, person,
// action_item, meeting or note_topic depending on ObjectType.
type ExecObject struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	FolderId    *uuid.UUID
	ObjectType  string
	Title       string
	Description *string
	Status      *string
	Metadata    json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
