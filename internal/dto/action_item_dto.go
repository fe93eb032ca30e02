package dto

import (
	"time"

	"exec-workspace-be/internal/entity"

	"github.com/google/uuid"
)

type CreateActionItemRequest struct {
	Title           string     `json:"title" validate:"required"`
	Description     *string    `json:"description"`
	Status          string     `json:"status" validate:"omitempty,oneof=todo doing blocked done"`
	DueDate         *time.Time `json:"dueDate"`
	OwnerPersonId   *uuid.UUID `json:"ownerPersonId"`
	RelatedObjectId *uuid.UUID `json:"relatedObjectId"`
	SourceNoteId    *uuid.UUID `json:"sourceNoteId"`
}

type UpdateActionItemRequest struct {
	Title           *string    `json:"title" validate:"omitempty,min=1"`
	Description     *string    `json:"description"`
	Status          *string    `json:"status" validate:"omitempty,oneof=todo doing blocked done"`
	DueDate         *time.Time `json:"dueDate"`
	OwnerPersonId   *uuid.UUID `json:"ownerPersonId"`
	RelatedObjectId *uuid.UUID `json:"relatedObjectId"`
	SourceNoteId    *uuid.UUID `json:"sourceNoteId"`
}

type ActionItemResponse struct {
	Id              uuid.UUID  `json:"id"`
	WorkspaceId     uuid.UUID  `json:"workspaceId"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	Status          string     `json:"status"`
	DueDate         *time.Time `json:"dueDate"`
	OwnerPersonId   *uuid.UUID `json:"ownerPersonId"`
	RelatedObjectId *uuid.UUID `json:"relatedObjectId"`
	SourceNoteId    *uuid.UUID `json:"sourceNoteId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func NewActionItemResponse(a *entity.ActionItem) *ActionItemResponse {
	return &ActionItemResponse{
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

func NewActionItemResponses(items []*entity.ActionItem) []*ActionItemResponse {
	res := make([]*ActionItemResponse, len(items))
	for i, a := range items {
		res[i] = NewActionItemResponse(a)
	}
	return res
}
