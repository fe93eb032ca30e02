package entity

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	Name        string
	Color       string
	CreatedAt   time.Time
}
