package contract

import (
	"context"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ExecObjectRepository interface {
	Create(ctx context.Context, object *entity.ExecObject) error
	Update(ctx context.Context, object *entity.ExecObject) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExecObject, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExecObject, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
