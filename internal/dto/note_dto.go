package dto

import (
	"encoding/json"
	"time"

	"exec-workspace-be/internal/entity"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title    string          `json:"title" validate:"required"`
	Content  json.RawMessage `json:"content"`
	ObjectId *uuid.UUID      `json:"objectId"`
	NoteKind string          `json:"noteKind" validate:"omitempty,oneof=general daily weekly monthly meeting project_log"`
	Pinned   bool            `json:"pinned"`
}

type UpdateNoteRequest struct {
	Title    *string         `json:"title" validate:"omitempty,min=1"`
	Content  json.RawMessage `json:"content"`
	ObjectId *uuid.UUID      `json:"objectId"`
	NoteKind *string         `json:"noteKind" validate:"omitempty,oneof=general daily weekly monthly meeting project_log"`
	Pinned   *bool           `json:"pinned"`
}

type NoteResponse struct {
	Id          uuid.UUID       `json:"id"`
	WorkspaceId uuid.UUID       `json:"workspaceId"`
	ObjectId    *uuid.UUID      `json:"objectId"`
	Title       string          `json:"title"`
	Content     json.RawMessage `json:"content"`
	NoteKind    string          `json:"noteKind"`
	Pinned      bool            `json:"pinned"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewNoteResponse(n *entity.Note) *NoteResponse {
	return &NoteResponse{
		Id:          n.Id,
		WorkspaceId: n.WorkspaceId,
		ObjectId:    n.ObjectId,
		Title:       n.Title,
		Content:     n.Content,
		NoteKind:    n.NoteKind,
		Pinned:      n.Pinned,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func NewNoteResponses(notes []*entity.Note) []*NoteResponse {
	res := make([]*NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = NewNoteResponse(n)
	}
	return res
}

type NoteLinkResponse struct {
	Id         uuid.UUID `json:"id"`
	NoteId     uuid.UUID `json:"noteId"`
	TargetType string    `json:"targetType"`
	TargetId   uuid.UUID `json:"targetId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewNoteLinkResponses(links []*entity.NoteLink) []*NoteLinkResponse {
	res := make([]*NoteLinkResponse, len(links))
	for i, l := range links {
		res[i] = &NoteLinkResponse{
			Id:         l.Id,
			NoteId:     l.NoteId,
			TargetType: l.TargetType,
			TargetId:   l.TargetId,
			CreatedAt:  l.CreatedAt,
		}
	}
	return res
}
