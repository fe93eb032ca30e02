package contract

import (
	"context"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"
)

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *entity.Workspace) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
