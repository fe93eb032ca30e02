package mapper

import (
	"encoding/json"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/model"

	"gorm.io/datatypes"
)

type GoalPeriodMapper struct{}

func NewGoalPeriodMapper() *GoalPeriodMapper {
	return &GoalPeriodMapper{}
}

func (m *GoalPeriodMapper) ToEntity(g *model.GoalPeriod) *entity.GoalPeriod {
	if g == nil {
		return nil
	}
	return &entity.GoalPeriod{
		Id:              g.Id,
		WorkspaceId:     g.WorkspaceId,
		PeriodType:      g.PeriodType,
		PeriodStartDate: g.PeriodStartDate,
		Summary:         g.Summary,
		LinkedItems:     json.RawMessage(g.LinkedItems),
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func (m *GoalPeriodMapper) ToModel(g *entity.GoalPeriod) *model.GoalPeriod {
	if g == nil {
		return nil
	}
	return &model.GoalPeriod{
		Id:              g.Id,
		WorkspaceId:     g.WorkspaceId,
		PeriodType:      g.PeriodType,
		PeriodStartDate: g.PeriodStartDate,
		Summary:         g.Summary,
		LinkedItems:     datatypes.JSON(g.LinkedItems),
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func (m *GoalPeriodMapper) ToEntities(periods []*model.GoalPeriod) []*entity.GoalPeriod {
	entities := make([]*entity.GoalPeriod, len(periods))
	for i, g := range periods {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
