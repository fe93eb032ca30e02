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

type NoteLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteLinkMapper
}

func NewNoteLinkRepository(db *gorm.DB) contract.NoteLinkRepository {
	return &NoteLinkRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteLinkMapper(),
	}
}

func (r *NoteLinkRepositoryImpl) Create(ctx context.Context, link *entity.NoteLink) error {
	m := r.mapper.ToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteLinkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteLink, error) {
	var models []*model.NoteLink
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteLinkRepositoryImpl) DeleteAllByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteLink{}).Error
}
