package controller

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"exec-workspace-be/internal/dto"
	"exec-workspace-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoteService struct {
	notes map[uuid.UUID]*dto.NoteResponse
	links map[uuid.UUID][]*dto.NoteLinkResponse
}

func newFakeNoteService() *fakeNoteService {
	return &fakeNoteService{
		notes: map[uuid.UUID]*dto.NoteResponse{},
		links: map[uuid.UUID][]*dto.NoteLinkResponse{},
	}
}

func (s *fakeNoteService) List(ctx context.Context) ([]*dto.NoteResponse, error) {
	res := []*dto.NoteResponse{}
	for _, n := range s.notes {
		res = append(res, n)
	}
	return res, nil
}

func (s *fakeNoteService) Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	return s.notes[id], nil
}

func (s *fakeNoteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	noteKind := req.NoteKind
	if noteKind == "" {
		noteKind = "general"
	}
	now := time.Now()
	res := &dto.NoteResponse{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		NoteKind:  noteKind,
		Pinned:    req.Pinned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes[res.Id] = res
	return res, nil
}

func (s *fakeNoteService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note := s.notes[id]
	if note == nil {
		return nil, nil
	}
	if req.Title != nil {
		note.Title = *req.Title
	}
	return note, nil
}

func (s *fakeNoteService) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.notes, id)
	return nil
}

func (s *fakeNoteService) ListLinks(ctx context.Context, noteId uuid.UUID) ([]*dto.NoteLinkResponse, error) {
	if s.notes[noteId] == nil {
		return nil, nil
	}
	links := s.links[noteId]
	if links == nil {
		links = []*dto.NoteLinkResponse{}
	}
	return links, nil
}

func newNoteTestApp(svc *fakeNoteService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(nopLogger{}))
	api := app.Group("/api")
	NewNoteController(svc).RegisterRoutes(api)
	return app
}

func TestNoteController_Create(t *testing.T) {
	app := newNoteTestApp(newFakeNoteService())

	t.Run("content is stored verbatim", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/api/notes", fiber.Map{
			"title":   "Architecture notes",
			"content": fiber.Map{"type": "doc", "content": []string{}},
		})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var body dto.NoteResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "general", body.NoteKind)
		assert.JSONEq(t, `{"type":"doc","content":[]}`, string(body.Content))
	})

	t.Run("rejects an invalid note kind", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/api/notes", fiber.Map{
			"title":    "Bad kind",
			"noteKind": "diary",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestNoteController_Links(t *testing.T) {
	svc := newFakeNoteService()
	app := newNoteTestApp(svc)

	created := doJSON(t, app, fiber.MethodPost, "/api/notes", fiber.Map{"title": "Linked"})
	var note dto.NoteResponse
	decodeBody(t, created, &note)

	svc.links[note.Id] = []*dto.NoteLinkResponse{
		{Id: uuid.New(), NoteId: note.Id, TargetType: "object", TargetId: uuid.New(), CreatedAt: time.Now()},
	}

	t.Run("lists links of a known note", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/notes/"+note.Id.String()+"/links", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body []dto.NoteLinkResponse
		decodeBody(t, resp, &body)
		require.Len(t, body, 1)
		assert.Equal(t, "object", body[0].TargetType)
	})

	t.Run("unknown note returns 404", func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/notes/"+uuid.NewString()+"/links", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestNoteController_Update(t *testing.T) {
	svc := newFakeNoteService()
	app := newNoteTestApp(svc)

	created := doJSON(t, app, fiber.MethodPost, "/api/notes", fiber.Map{"title": "Before"})
	var note dto.NoteResponse
	decodeBody(t, created, &note)

	resp := doJSON(t, app, fiber.MethodPatch, "/api/notes/"+note.Id.String(), fiber.Map{
		"title": "After",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.NoteResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "After", body.Title)

	raw, _ := json.Marshal(body)
	assert.NotContains(t, string(raw), `"data"`)
}
