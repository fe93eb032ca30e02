package mapper

import (
	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/model"
)

type ActionItemMapper struct{}

func NewActionItemMapper() *ActionItemMapper {
	return &ActionItemMapper{}
}

func (m *ActionItemMapper) ToEntity(a *model.ActionItem) *entity.ActionItem {
	if a == nil {
		return nil
	}
	return &entity.ActionItem{
		Id:              a.Id,
		WorkspaceId:     a.WorkspaceId,
		Title:           a.Title,
		Description:     a.Description,
		Status:          a.Status,
		DueDate:         a.DueDate,
		OwnerPersonId:   a.OwnerPersonId,
		RelatedObjectId: a.RelatedObjectId,
		SourceNoteId:    a.SourceNoteId,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *ActionItemMapper) ToModel(a *entity.ActionItem) *model.ActionItem {
	if a == nil {
		return nil
	}
	return &model.ActionItem{
		Id:              a.Id,
		WorkspaceId:     a.WorkspaceId,
		Title:           a.Title,
		Description:     a.Description,
		Status:          a.Status,
		DueDate:         a.DueDate,
		OwnerPersonId:   a.OwnerPersonId,
		RelatedObjectId: a.RelatedObjectId,
		SourceNoteId:    a.SourceNoteId,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (m *ActionItemMapper) ToEntities(items []*model.ActionItem) []*entity.ActionItem {
	entities := make([]*entity.ActionItem, len(items))
	for i, a := range items {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
