package mapper

import (
	"encoding/json"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/model"

	"gorm.io/datatypes"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	return &entity.Note{
		Id:          n.Id,
		WorkspaceId: n.WorkspaceId,
		ObjectId:    n.ObjectId,
		Title:       n.Title,
		Content:     json.RawMessage(n.Content),
		NoteKind:    n.NoteKind,
		Pinned:      n.Pinned,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		Id:          n.Id,
		WorkspaceId: n.WorkspaceId,
		ObjectId:    n.ObjectId,
		Title:       n.Title,
		Content:     datatypes.JSON(n.Content),
		NoteKind:    n.NoteKind,
		Pinned:      n.Pinned,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
