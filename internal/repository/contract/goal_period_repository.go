package contract

import (
	"context"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type GoalPeriodRepository interface {
	Create(ctx context.Context, period *entity.GoalPeriod) error
	Update(ctx context.Context, period *entity.GoalPeriod) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GoalPeriod, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GoalPeriod, error)
}
