package service

import (
	"context"
	"time"

	"exec-workspace-be/internal/dto"
	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"
	"exec-workspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IGoalPeriodService interface {
	List(ctx context.Context) ([]*dto.GoalPeriodResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.GoalPeriodResponse, error)
	Create(ctx context.Context, req *dto.CreateGoalPeriodRequest) (*dto.GoalPeriodResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateGoalPeriodRequest) (*dto.GoalPeriodResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type goalPeriodService struct {
	uowFactory  unitofwork.RepositoryFactory
	workspaceId uuid.UUID
}

func NewGoalPeriodService(uowFactory unitofwork.RepositoryFactory, workspaceId uuid.UUID) IGoalPeriodService {
	return &goalPeriodService{
		uowFactory:  uowFactory,
		workspaceId: workspaceId,
	}
}

func (s *goalPeriodService) List(ctx context.Context) ([]*dto.GoalPeriodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	periods, err := uow.GoalPeriodRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: s.workspaceId},
		specification.OrderBy{Field: "period_start_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewGoalPeriodResponses(periods), nil
}

func (s *goalPeriodService) Show(ctx context.Context, id uuid.UUID) (*dto.GoalPeriodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	period, err := uow.GoalPeriodRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, nil
	}
	return dto.NewGoalPeriodResponse(period), nil
}

func (s *goalPeriodService) Create(ctx context.Context, req *dto.CreateGoalPeriodRequest) (*dto.GoalPeriodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	period := entity.GoalPeriod{
		Id:              uuid.New(),
		WorkspaceId:     s.workspaceId,
		PeriodType:      req.PeriodType,
		PeriodStartDate: req.PeriodStartDate,
		Summary:         req.Summary,
		LinkedItems:     req.LinkedItems,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uow.GoalPeriodRepository().Create(ctx, &period); err != nil {
		return nil, err
	}
	return dto.NewGoalPeriodResponse(&period), nil
}

func (s *goalPeriodService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateGoalPeriodRequest) (*dto.GoalPeriodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	period, err := uow.GoalPeriodRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if period == nil {
		return nil, nil
	}

	if req.PeriodType != nil {
		period.PeriodType = *req.PeriodType
	}
	if req.PeriodStartDate != nil {
		period.PeriodStartDate = *req.PeriodStartDate
	}
	if req.Summary != nil {
		period.Summary = req.Summary
	}
	if req.LinkedItems != nil {
		period.LinkedItems = req.LinkedItems
	}
	period.UpdatedAt = time.Now()

	if err := uow.GoalPeriodRepository().Update(ctx, period); err != nil {
		return nil, err
	}
	return dto.NewGoalPeriodResponse(period), nil
}

func (s *goalPeriodService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.GoalPeriodRepository().Delete(ctx, id)
}
