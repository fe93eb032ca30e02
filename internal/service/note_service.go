package service

import (
	"context"
	"time"

	"exec-workspace-be/internal/dto"
	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"
	"exec-workspace-be/internal/repository/unitofwork"
	"exec-workspace-be/pkg/events"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListLinks(ctx context.Context, noteId uuid.UUID) ([]*dto.NoteLinkResponse, error)
}

type noteService struct {
	uowFactory  unitofwork.RepositoryFactory
	workspaceId uuid.UUID
	activity    IActivityPublisher
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceId uuid.UUID,
	activity IActivityPublisher,
) INoteService {
	return &noteService{
		uowFactory:  uowFactory,
		workspaceId: workspaceId,
		activity:    activity,
	}
}

func (s *noteService) List(ctx context.Context) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: s.workspaceId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewNoteResponses(notes), nil
}

func (s *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	return dto.NewNoteResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	noteKind := req.NoteKind
	if noteKind == "" {
		noteKind = "general"
	}

	now := time.Now()
	note := entity.Note{
		Id:          uuid.New(),
		WorkspaceId: s.workspaceId,
		ObjectId:    req.ObjectId,
		Title:       req.Title,
		Content:     req.Content,
		NoteKind:    noteKind,
		Pinned:      req.Pinned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.activity.Publish(ctx, events.BaseEvent{
		Type: "NOTE_CREATED",
		Data: map[string]interface{}{
			"note_id":   note.Id,
			"note_kind": note.NoteKind,
			"title":     note.Title,
		},
		OccurredAt: now,
	})

	return dto.NewNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = req.Content
	}
	if req.ObjectId != nil {
		note.ObjectId = req.ObjectId
	}
	if req.NoteKind != nil {
		note.NoteKind = *req.NoteKind
	}
	if req.Pinned != nil {
		note.Pinned = *req.Pinned
	}
	note.UpdatedAt = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	return dto.NewNoteResponse(note), nil
}

// Delete removes a note and its outgoing links in one transaction, so a
// failure midway never leaves links pointing at a missing note.
func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.NoteLinkRepository().DeleteAllByNoteId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.activity.Publish(ctx, events.BaseEvent{
		Type:       "NOTE_DELETED",
		Data:       map[string]interface{}{"note_id": id},
		OccurredAt: time.Now(),
	})
	return nil
}

func (s *noteService) ListLinks(ctx context.Context, noteId uuid.UUID) ([]*dto.NoteLinkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	links, err := uow.NoteLinkRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewNoteLinkResponses(links), nil
}
