package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"exec-workspace-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalPeriodService_CRUD(t *testing.T) {
	factory := newFakeFactory()
	workspaceId := uuid.New()
	svc := NewGoalPeriodService(factory, workspaceId)

	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), &dto.CreateGoalPeriodRequest{
		PeriodType:      "weekly",
		PeriodStartDate: start,
		LinkedItems:     json.RawMessage(`[{"type":"object","id":"abc"}]`),
	})
	require.NoError(t, err)
	assert.Equal(t, workspaceId, created.WorkspaceId)
	assert.Equal(t, "weekly", created.PeriodType)
	assert.True(t, created.PeriodStartDate.Equal(start))

	t.Run("patch summary only", func(t *testing.T) {
		summary := "Shipped the mobile beta"
		res, err := svc.Update(context.Background(), created.Id, &dto.UpdateGoalPeriodRequest{
			Summary: &summary,
		})
		require.NoError(t, err)
		require.NotNil(t, res.Summary)
		assert.Equal(t, summary, *res.Summary)
		assert.Equal(t, "weekly", res.PeriodType)
		assert.JSONEq(t, `[{"type":"object","id":"abc"}]`, string(res.LinkedItems))
	})

	t.Run("delete then list is empty", func(t *testing.T) {
		require.NoError(t, svc.Delete(context.Background(), created.Id))

		periods, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, periods)
	})
}
