package mapper

import (
	"testing"
	"time"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteMapper(t *testing.T) {
	m := NewNoteMapper()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, m.ToEntity(nil))
		assert.Nil(t, m.ToModel(nil))
	})

	t.Run("model to entity keeps the content document", func(t *testing.T) {
		objectId := uuid.New()
		now := time.Now()
		note := &model.Note{
			Id:          uuid.New(),
			WorkspaceId: uuid.New(),
			ObjectId:    &objectId,
			Title:       "Architecture notes",
			Content:     []byte(`{"type":"doc","content":[]}`),
			NoteKind:    "meeting",
			Pinned:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		e := m.ToEntity(note)
		require.NotNil(t, e)
		assert.Equal(t, note.Id, e.Id)
		assert.Equal(t, note.ObjectId, e.ObjectId)
		assert.JSONEq(t, `{"type":"doc","content":[]}`, string(e.Content))
		assert.True(t, e.Pinned)
	})

	t.Run("round trip preserves everything", func(t *testing.T) {
		now := time.Now()
		e := &entity.Note{
			Id:          uuid.New(),
			WorkspaceId: uuid.New(),
			Title:       "Weekly review",
			Content:     []byte(`{"type":"doc"}`),
			NoteKind:    "weekly",
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		back := m.ToEntity(m.ToModel(e))
		assert.Equal(t, e, back)
	})
}

func TestExecObjectMapper(t *testing.T) {
	m := NewExecObjectMapper()

	t.Run("round trip preserves nullable fields", func(t *testing.T) {
		description := "VP of Engineering"
		status := "active"
		now := time.Now()
		e := &entity.ExecObject{
			Id:          uuid.New(),
			WorkspaceId: uuid.New(),
			ObjectType:  "person",
			Title:       "Sarah Chen",
			Description: &description,
			Status:      &status,
			Metadata:    []byte(`{"email":"sarah@example.com"}`),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		back := m.ToEntity(m.ToModel(e))
		assert.Equal(t, e, back)
	})

	t.Run("entities slice maps element-wise", func(t *testing.T) {
		models := []*model.ExecObject{
			{Id: uuid.New(), Title: "A", ObjectType: "project"},
			{Id: uuid.New(), Title: "B", ObjectType: "priority"},
		}
		entities := m.ToEntities(models)
		require.Len(t, entities, 2)
		assert.Equal(t, "A", entities[0].Title)
		assert.Equal(t, "B", entities[1].Title)
	})
}
