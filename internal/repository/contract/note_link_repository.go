package contract

import (
	"context"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteLinkRepository interface {
	Create(ctx context.Context, link *entity.NoteLink) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteLink, error)
	DeleteAllByNoteId(ctx context.Context, noteId uuid.UUID) error
}
