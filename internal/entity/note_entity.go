package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Note content is a rich-text document tree stored verbatim; the server
// never interprets it beyond persistence.
type Note struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	ObjectId    *uuid.UUID
	Title       string
	Content     json.RawMessage
	NoteKind    string
	Pinned      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
