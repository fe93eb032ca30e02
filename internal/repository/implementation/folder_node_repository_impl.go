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

type FolderNodeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FolderNodeMapper
}

func NewFolderNodeRepository(db *gorm.DB) contract.FolderNodeRepository {
	return &FolderNodeRepositoryImpl{
		db:     db,
		mapper: mapper.NewFolderNodeMapper(),
	}
}

func (r *FolderNodeRepositoryImpl) Create(ctx context.Context, folder *entity.FolderNode) error {
	m := r.mapper.ToModel(folder)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*folder = *r.mapper.ToEntity(m)
	return nil
}

func (r *FolderNodeRepositoryImpl) Update(ctx context.Context, folder *entity.FolderNode) error {
	m := r.mapper.ToModel(folder)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*folder = *r.mapper.ToEntity(m)
	return nil
}

func (r *FolderNodeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FolderNode{}, id).Error
}

func (r *FolderNodeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FolderNode, error) {
	var m model.FolderNode
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FolderNodeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FolderNode, error) {
	var models []*model.FolderNode
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
