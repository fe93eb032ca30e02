package contract

import (
	"context"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FolderNodeRepository interface {
	Create(ctx context.Context, folder *entity.FolderNode) error
	Update(ctx context.Context, folder *entity.FolderNode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FolderNode, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FolderNode, error)
}
