package mapper

import (
	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/model"
)

type FolderNodeMapper struct{}

func NewFolderNodeMapper() *FolderNodeMapper {
	return &FolderNodeMapper{}
}

func (m *FolderNodeMapper) ToEntity(f *model.FolderNode) *entity.FolderNode {
	if f == nil {
		return nil
	}
	return &entity.FolderNode{
		Id:          f.Id,
		WorkspaceId: f.WorkspaceId,
		ParentId:    f.ParentId,
		NodeType:    f.NodeType,
		Category:    f.Category,
		ObjectType:  f.ObjectType,
		Title:       f.Title,
		SortOrder:   f.SortOrder,
		IsCollapsed: f.IsCollapsed,
		CreatedAt:   f.CreatedAt,
	}
}

func (m *FolderNodeMapper) ToModel(f *entity.FolderNode) *model.FolderNode {
	if f == nil {
		return nil
	}
	return &model.FolderNode{
		Id:          f.Id,
		WorkspaceId: f.WorkspaceId,
		ParentId:    f.ParentId,
		NodeType:    f.NodeType,
		Category:    f.Category,
		ObjectType:  f.ObjectType,
		Title:       f.Title,
		SortOrder:   f.SortOrder,
		IsCollapsed: f.IsCollapsed,
		CreatedAt:   f.CreatedAt,
	}
}

func (m *FolderNodeMapper) ToEntities(folders []*model.FolderNode) []*entity.FolderNode {
	entities := make([]*entity.FolderNode, len(folders))
	for i, f := range folders {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
