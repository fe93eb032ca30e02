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

type IActionItemService interface {
	List(ctx context.Context) ([]*dto.ActionItemResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ActionItemResponse, error)
	Create(ctx context.Context, req *dto.CreateActionItemRequest) (*dto.ActionItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateActionItemRequest) (*dto.ActionItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type actionItemService struct {
	uowFactory  unitofwork.RepositoryFactory
	workspaceId uuid.UUID
	activity    IActivityPublisher
}

func NewActionItemService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceId uuid.UUID,
	activity IActivityPublisher,
) IActionItemService {
	return &actionItemService{
		uowFactory:  uowFactory,
		workspaceId: workspaceId,
		activity:    activity,
	}
}

func (s *actionItemService) List(ctx context.Context) ([]*dto.ActionItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.ActionItemRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: s.workspaceId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewActionItemResponses(items), nil
}

func (s *actionItemService) Show(ctx context.Context, id uuid.UUID) (*dto.ActionItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.ActionItemRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return dto.NewActionItemResponse(item), nil
}

func (s *actionItemService) Create(ctx context.Context, req *dto.CreateActionItemRequest) (*dto.ActionItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := req.Status
	if status == "" {
		status = "todo"
	}

	now := time.Now()
	item := entity.ActionItem{
		Id:              uuid.New(),
		WorkspaceId:     s.workspaceId,
		Title:           req.Title,
		Description:     req.Description,
		Status:          status,
		DueDate:         req.DueDate,
		OwnerPersonId:   req.OwnerPersonId,
		RelatedObjectId: req.RelatedObjectId,
		SourceNoteId:    req.SourceNoteId,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uow.ActionItemRepository().Create(ctx, &item); err != nil {
		return nil, err
	}

	s.activity.Publish(ctx, events.BaseEvent{
		Type: "ACTION_ITEM_CREATED",
		Data: map[string]interface{}{
			"action_item_id": item.Id,
			"title":          item.Title,
			"status":         item.Status,
		},
		OccurredAt: now,
	})

	return dto.NewActionItemResponse(&item), nil
}

func (s *actionItemService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateActionItemRequest) (*dto.ActionItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.ActionItemRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	previousStatus := item.Status

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.DueDate != nil {
		item.DueDate = req.DueDate
	}
	if req.OwnerPersonId != nil {
		item.OwnerPersonId = req.OwnerPersonId
	}
	if req.RelatedObjectId != nil {
		item.RelatedObjectId = req.RelatedObjectId
	}
	if req.SourceNoteId != nil {
		item.SourceNoteId = req.SourceNoteId
	}
	item.UpdatedAt = time.Now()

	if err := uow.ActionItemRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	if item.Status != previousStatus {
		s.activity.Publish(ctx, events.BaseEvent{
			Type: "ACTION_ITEM_STATUS_CHANGED",
			Data: map[string]interface{}{
				"action_item_id": item.Id,
				"from":           previousStatus,
				"to":             item.Status,
			},
			OccurredAt: item.UpdatedAt,
		})
	}

	return dto.NewActionItemResponse(item), nil
}

func (s *actionItemService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ActionItemRepository().Delete(ctx, id)
}
