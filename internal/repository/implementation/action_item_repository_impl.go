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

type ActionItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActionItemMapper
}

func NewActionItemRepository(db *gorm.DB) contract.ActionItemRepository {
	return &ActionItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewActionItemMapper(),
	}
}

func (r *ActionItemRepositoryImpl) Create(ctx context.Context, item *entity.ActionItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActionItemRepositoryImpl) Update(ctx context.Context, item *entity.ActionItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActionItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ActionItem{}, id).Error
}

func (r *ActionItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionItem, error) {
	var m model.ActionItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ActionItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionItem, error) {
	var models []*model.ActionItem
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ActionItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ActionItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
