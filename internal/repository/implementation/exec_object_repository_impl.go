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

type ExecObjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ExecObjectMapper
}

func NewExecObjectRepository(db *gorm.DB) contract.ExecObjectRepository {
	return &ExecObjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewExecObjectMapper(),
	}
}

func (r *ExecObjectRepositoryImpl) Create(ctx context.Context, object *entity.ExecObject) error {
	m := r.mapper.ToModel(object)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*object = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExecObjectRepositoryImpl) Update(ctx context.Context, object *entity.ExecObject) error {
	m := r.mapper.ToModel(object)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*object = *r.mapper.ToEntity(m)
	return nil
}

func (r *ExecObjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ExecObject{}, id).Error
}

func (r *ExecObjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExecObject, error) {
	var m model.ExecObject
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ExecObjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExecObject, error) {
	var models []*model.ExecObject
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ExecObjectRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ExecObject{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
