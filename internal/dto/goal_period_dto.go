package dto

import (
	"encoding/json"
	"time"

	"exec-workspace-be/internal/entity"

	"github.com/google/uuid"
)

type CreateGoalPeriodRequest struct {
	PeriodType      string          `json:"periodType" validate:"required,oneof=daily weekly monthly"`
	PeriodStartDate time.Time       `json:"periodStartDate" validate:"required"`
	Summary         *string         `json:"summary"`
	LinkedItems     json.RawMessage `json:"linkedItems"`
}

type UpdateGoalPeriodRequest struct {
	PeriodType      *string         `json:"periodType" validate:"omitempty,oneof=daily weekly monthly"`
	PeriodStartDate *time.Time      `json:"periodStartDate"`
	Summary         *string         `json:"summary"`
	LinkedItems     json.RawMessage `json:"linkedItems"`
}

type GoalPeriodResponse struct {
	Id              uuid.UUID       `json:"id"`
	WorkspaceId     uuid.UUID       `json:"workspaceId"`
	PeriodType      string          `json:"periodType"`
	PeriodStartDate time.Time       `json:"periodStartDate"`
	Summary         *string         `json:"summary"`
	LinkedItems     json.RawMessage `json:"linkedItems"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func NewGoalPeriodResponse(g *entity.GoalPeriod) *GoalPeriodResponse {
	return &GoalPeriodResponse{
		Id:              g.Id,
		WorkspaceId:     g.WorkspaceId,
		PeriodType:      g.PeriodType,
		PeriodStartDate: g.PeriodStartDate,
		Summary:         g.Summary,
		LinkedItems:     g.LinkedItems,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func NewGoalPeriodResponses(periods []*entity.GoalPeriod) []*GoalPeriodResponse {
	res := make([]*GoalPeriodResponse, len(periods))
	for i, g := range periods {
		res[i] = NewGoalPeriodResponse(g)
	}
	return res
}
