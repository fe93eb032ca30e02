package implementation

import (
	"context"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/mapper"
	"exec-workspace-be/internal/model"
	"exec-workspace-be/internal/repository/contract"
	"exec-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ObjectTagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ObjectTagMapper
}

func NewObjectTagRepository(db *gorm.DB) contract.ObjectTagRepository {
	return &ObjectTagRepositoryImpl{
		db:     db,
		mapper: mapper.NewObjectTagMapper(),
	}
}

func (r *ObjectTagRepositoryImpl) Create(ctx context.Context, objectTag *entity.ObjectTag) error {
	m := r.mapper.ToModel(objectTag)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*objectTag = *r.mapper.ToEntity(m)
	return nil
}

func (r *ObjectTagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ObjectTag, error) {
	var models []*model.ObjectTag
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ObjectTagRepositoryImpl) DeleteAllByTagId(ctx context.Context, tagId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("tag_id = ?", tagId).Delete(&model.ObjectTag{}).Error
}

func (r *ObjectTagRepositoryImpl) DeleteByObjectAndTag(ctx context.Context, objectId, tagId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("object_id = ? AND tag_id = ?", objectId, tagId).
		Delete(&model.ObjectTag{}).Error
}
