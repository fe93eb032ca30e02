package contract

import (
	"context"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ActionItemRepository interface {
	Create(ctx context.Context, item *entity.ActionItem) error
	Update(ctx context.Context, item *entity.ActionItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
