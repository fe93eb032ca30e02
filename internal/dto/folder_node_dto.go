package dto

import (
	"time"

	"exec-workspace-be/internal/entity"

	"github.com/google/uuid"
)

type CreateFolderNodeRequest struct {
	ParentId    *uuid.UUID `json:"parentId"`
	NodeType    string     `json:"nodeType" validate:"required,oneof=root category object_collection object"`
	Category    *string    `json:"category"`
	ObjectType  *string    `json:"objectType" validate:"omitempty,oneof=priority project person action_item meeting note_topic"`
	Title       string     `json:"title" validate:"required"`
	SortOrder   int        `json:"sortOrder"`
	IsCollapsed bool       `json:"isCollapsed"`
}

type UpdateFolderNodeRequest struct {
	ParentId    *uuid.UUID `json:"parentId"`
	NodeType    *string    `json:"nodeType" validate:"omitempty,oneof=root category object_collection object"`
	Category    *string    `json:"category"`
	ObjectType  *string    `json:"objectType" validate:"omitempty,oneof=priority project person action_item meeting note_topic"`
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	SortOrder   *int       `json:"sortOrder"`
	IsCollapsed *bool      `json:"isCollapsed"`
}

type FolderNodeResponse struct {
	Id          uuid.UUID  `json:"id"`
	WorkspaceId uuid.UUID  `json:"workspaceId"`
	ParentId    *uuid.UUID `json:"parentId"`
	NodeType    string     `json:"nodeType"`
	Category    *string    `json:"category"`
	ObjectType  *string    `json:"objectType"`
	Title       string     `json:"title"`
	SortOrder   int        `json:"sortOrder"`
	IsCollapsed bool       `json:"isCollapsed"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewFolderNodeResponse(f *entity.FolderNode) *FolderNodeResponse {
	return &FolderNodeResponse{
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

func NewFolderNodeResponses(folders []*entity.FolderNode) []*FolderNodeResponse {
	res := make([]*FolderNodeResponse, len(folders))
	for i, f := range folders {
		res[i] = NewFolderNodeResponse(f)
	}
	return res
}
