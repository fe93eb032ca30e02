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

const defaultTagColor = "#6366f1"

type ITagService interface {
	List(ctx context.Context) ([]*dto.TagResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error)
	Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tagService struct {
	uowFactory  unitofwork.RepositoryFactory
	workspaceId uuid.UUID
}

func NewTagService(uowFactory unitofwork.RepositoryFactory, workspaceId uuid.UUID) ITagService {
	return &tagService{
		uowFactory:  uowFactory,
		workspaceId: workspaceId,
	}
}

func (s *tagService) List(ctx context.Context) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tags, err := uow.TagRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: s.workspaceId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewTagResponses(tags), nil
}

func (s *tagService) Show(ctx context.Context, id uuid.UUID) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}
	return dto.NewTagResponse(tag), nil
}

func (s *tagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	color := req.Color
	if color == "" {
		color = defaultTagColor
	}

	tag := entity.Tag{
		Id:          uuid.New(),
		WorkspaceId: s.workspaceId,
		Name:        req.Name,
		Color:       color,
		CreatedAt:   time.Now(),
	}
	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		return nil, err
	}
	return dto.NewTagResponse(&tag), nil
}

func (s *tagService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTagRequest) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	if req.Color != nil {
		tag.Color = *req.Color
	}

	if err := uow.TagRepository().Update(ctx, tag); err != nil {
		return nil, err
	}
	return dto.NewTagResponse(tag), nil
}

// Delete removes a tag together with its object assignments in one
// transaction.
func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.ObjectTagRepository().DeleteAllByTagId(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.TagRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}

	return uow.Commit()
}
