package mapper

import (
	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/model"
)

type WorkspaceMapper struct{}

func NewWorkspaceMapper() *WorkspaceMapper {
	return &WorkspaceMapper{}
}

func (m *WorkspaceMapper) ToEntity(w *model.Workspace) *entity.Workspace {
	if w == nil {
		return nil
	}
	return &entity.Workspace{
		Id:        w.Id,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
	}
}

func (m *WorkspaceMapper) ToModel(w *entity.Workspace) *model.Workspace {
	if w == nil {
		return nil
	}
	return &model.Workspace{
		Id:        w.Id,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
	}
}
