package contract

import (
	"context"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ObjectTagRepository interface {
	Create(ctx context.Context, objectTag *entity.ObjectTag) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ObjectTag, error)
	DeleteAllByTagId(ctx context.Context, tagId uuid.UUID) error
	DeleteByObjectAndTag(ctx context.Context, objectId, tagId uuid.UUID) error
}
