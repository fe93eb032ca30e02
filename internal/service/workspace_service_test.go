package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceService_GetDefault(t *testing.T) {
	factory := newFakeFactory()
	svc := NewWorkspaceService(factory, "My Workspace")

	t.Run("creates workspace on first call", func(t *testing.T) {
		workspace, err := svc.GetDefault(context.Background())
		require.NoError(t, err)
		require.NotNil(t, workspace)
		assert.Equal(t, "My Workspace", workspace.Name)
		assert.NotZero(t, workspace.Id)
		assert.NotZero(t, workspace.CreatedAt)
	})

	t.Run("returns the same workspace afterwards", func(t *testing.T) {
		first, err := svc.GetDefault(context.Background())
		require.NoError(t, err)

		second, err := svc.GetDefault(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first.Id, second.Id)
		assert.Len(t, factory.store.workspaces, 1)
	})
}
