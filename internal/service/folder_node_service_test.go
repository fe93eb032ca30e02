package service

import (
	"context"
	"testing"

	"exec-workspace-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderNodeService_CRUD(t *testing.T) {
	factory := newFakeFactory()
	workspaceId := uuid.New()
	svc := NewFolderNodeService(factory, workspaceId)

	created, err := svc.Create(context.Background(), &dto.CreateFolderNodeRequest{
		NodeType:  "category",
		Title:     "Projects",
		SortOrder: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, workspaceId, created.WorkspaceId)
	assert.Equal(t, "category", created.NodeType)

	t.Run("patch collapse state only", func(t *testing.T) {
		collapsed := true
		res, err := svc.Update(context.Background(), created.Id, &dto.UpdateFolderNodeRequest{
			IsCollapsed: &collapsed,
		})
		require.NoError(t, err)
		assert.True(t, res.IsCollapsed)
		assert.Equal(t, "Projects", res.Title)
		assert.Equal(t, 2, res.SortOrder)
	})

	t.Run("list scopes to the workspace", func(t *testing.T) {
		folders, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, folders, 1)
	})

	t.Run("delete then show reports missing", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), created.Id))

		res, err := svc.Show(context.Background(), created.Id)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}
