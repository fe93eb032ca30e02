package dto

import (
	"encoding/json"
	"time"

	"exec-workspace-be/internal/entity"

	"github.com/google/uuid"
)

type CreateObjectRequest struct {
	ObjectType  string          `json:"objectType" validate:"required,oneof=priority project person action_item meeting note_topic"`
	Title       string          `json:"title" validate:"required"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	FolderId    *uuid.UUID      `json:"folderId"`
	Metadata    json.RawMessage `json:"metadata"`
}

type UpdateObjectRequest struct {
	ObjectType  *string         `json:"objectType" validate:"omitempty,oneof=priority project person action_item meeting note_topic"`
	Title       *string         `json:"title" validate:"omitempty,min=1"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	FolderId    *uuid.UUID      `json:"folderId"`
	Metadata    json.RawMessage `json:"metadata"`
}

type ObjectResponse struct {
	Id          uuid.UUID       `json:"id"`
	WorkspaceId uuid.UUID       `json:"workspaceId"`
	FolderId    *uuid.UUID      `json:"folderId"`
	ObjectType  string          `json:"objectType"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	Metadata    json.RawMessage `json:"metadata"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewObjectResponse(o *entity.ExecObject) *ObjectResponse {
	return &ObjectResponse{
		Id:          o.Id,
		WorkspaceId: o.WorkspaceId,
		FolderId:    o.FolderId,
		ObjectType:  o.ObjectType,
		Title:       o.Title,
		Description: o.Description,
		Status:      o.Status,
		Metadata:    o.Metadata,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func NewObjectResponses(objects []*entity.ExecObject) []*ObjectResponse {
	res := make([]*ObjectResponse, len(objects))
	for i, o := range objects {
		res[i] = NewObjectResponse(o)
	}
	return res
}
