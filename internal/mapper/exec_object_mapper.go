package mapper

import (
	"encoding/json"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/model"

	"gorm.io/datatypes"
)

type ExecObjectMapper struct{}

func NewExecObjectMapper() *ExecObjectMapper {
	return &ExecObjectMapper{}
}

func (m *ExecObjectMapper) ToEntity(o *model.ExecObject) *entity.ExecObject {
	if o == nil {
		return nil
	}
	return &entity.ExecObject{
		Id:          o.Id,
		WorkspaceId: o.WorkspaceId,
		FolderId:    o.FolderId,
		ObjectType:  o.ObjectType,
		Title:       o.Title,
		Description: o.Description,
		Status:      o.Status,
		Metadata:    json.RawMessage(o.Metadata),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (m *ExecObjectMapper) ToModel(o *entity.ExecObject) *model.ExecObject {
	if o == nil {
		return nil
	}
	return &model.ExecObject{
		Id:          o.Id,
		WorkspaceId: o.WorkspaceId,
		FolderId:    o.FolderId,
		ObjectType:  o.ObjectType,
		Title:       o.Title,
		Description: o.Description,
		Status:      o.Status,
		Metadata:    datatypes.JSON(o.Metadata),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (m *ExecObjectMapper) ToEntities(objects []*model.ExecObject) []*entity.ExecObject {
	entities := make([]*entity.ExecObject, len(objects))
	for i, o := range objects {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
