package dto

import (
	"time"

	"exec-workspace-be/internal/entity"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateTagRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

type TagResponse struct {
	Id          uuid.UUID `json:"id"`
	WorkspaceId uuid.UUID `json:"workspaceId"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewTagResponse(t *entity.Tag) *TagResponse {
	return &TagResponse{
		Id:          t.Id,
		WorkspaceId: t.WorkspaceId,
		Name:        t.Name,
		Color:       t.Color,
		CreatedAt:   t.CreatedAt,
	}
}

func NewTagResponses(tags []*entity.Tag) []*TagResponse {
	res := make([]*TagResponse, len(tags))
	for i, t := range tags {
		res[i] = NewTagResponse(t)
	}
	return res
}

type AttachTagRequest struct {
	TagId uuid.UUID `json:"tagId" validate:"required"`
}

type ObjectTagResponse struct {
	Id       uuid.UUID `json:"id"`
	ObjectId uuid.UUID `json:"objectId"`
	TagId    uuid.UUID `json:"tagId"`
}

func NewObjectTagResponse(ot *entity.ObjectTag) *ObjectTagResponse {
	return &ObjectTagResponse{
		Id:       ot.Id,
		ObjectId: ot.ObjectId,
		TagId:    ot.TagId,
	}
}
