package implementation

import (
	"context"
	"errors"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/mapper"
	"exec-workspace-be/internal/model"
	"exec-workspace-be/internal/repository/contract"
	"exec-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalPeriodRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GoalPeriodMapper
}

func NewGoalPeriodRepository(db *gorm.DB) contract.GoalPeriodRepository {
	return &GoalPeriodRepositoryImpl{
		db:     db,
		mapper: mapper.NewGoalPeriodMapper(),
	}
}

func (r *GoalPeriodRepositoryImpl) Create(ctx context.Context, period *entity.GoalPeriod) error {
	m := r.mapper.ToModel(period)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*period = *r.mapper.ToEntity(m)
	return nil
}

func (r *GoalPeriodRepositoryImpl) Update(ctx context.Context, period *entity.GoalPeriod) error {
	m := r.mapper.ToModel(period)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*period = *r.mapper.ToEntity(m)
	return nil
}

func (r *GoalPeriodRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GoalPeriod{}, id).Error
}

func (r *GoalPeriodRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GoalPeriod, error) {
	var m model.GoalPeriod
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GoalPeriodRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GoalPeriod, error) {
	var models []*model.GoalPeriod
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
