package mapper

import (
	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/model"
)

type NoteLinkMapper struct{}

func NewNoteLinkMapper() *NoteLinkMapper {
	return &NoteLinkMapper{}
}

func (m *NoteLinkMapper) ToEntity(l *model.NoteLink) *entity.NoteLink {
	if l == nil {
		return nil
	}
	return &entity.NoteLink{
		Id:         l.Id,
		NoteId:     l.NoteId,
		TargetType: l.TargetType,
		TargetId:   l.TargetId,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *NoteLinkMapper) ToModel(l *entity.NoteLink) *model.NoteLink {
	if l == nil {
		return nil
	}
	return &model.NoteLink{
		Id:         l.Id,
		NoteId:     l.NoteId,
		TargetType: l.TargetType,
		TargetId:   l.TargetId,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *NoteLinkMapper) ToEntities(links []*model.NoteLink) []*entity.NoteLink {
	entities := make([]*entity.NoteLink, len(links))
	for i, l := range links {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
