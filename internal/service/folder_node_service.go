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

type IFolderNodeService interface {
	List(ctx context.Context) ([]*dto.FolderNodeResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.FolderNodeResponse, error)
	Create(ctx context.Context, req *dto.CreateFolderNodeRequest) (*dto.FolderNodeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFolderNodeRequest) (*dto.FolderNodeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type folderNodeService struct {
	uowFactory  unitofwork.RepositoryFactory
	workspaceId uuid.UUID
}

func NewFolderNodeService(uowFactory unitofwork.RepositoryFactory, workspaceId uuid.UUID) IFolderNodeService {
	return &folderNodeService{
		uowFactory:  uowFactory,
		workspaceId: workspaceId,
	}
}

func (s *folderNodeService) List(ctx context.Context) ([]*dto.FolderNodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folders, err := uow.FolderNodeRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: s.workspaceId},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewFolderNodeResponses(folders), nil
}

func (s *folderNodeService) Show(ctx context.Context, id uuid.UUID) (*dto.FolderNodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	folder, err := uow.FolderNodeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, nil
	}
	return dto.NewFolderNodeResponse(folder), nil
}

func (s *folderNodeService) Create(ctx context.Context, req *dto.CreateFolderNodeRequest) (*dto.FolderNodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder := entity.FolderNode{
		Id:          uuid.New(),
		WorkspaceId: s.workspaceId,
		ParentId:    req.ParentId,
		NodeType:    req.NodeType,
		Category:    req.Category,
		ObjectType:  req.ObjectType,
		Title:       req.Title,
		SortOrder:   req.SortOrder,
		IsCollapsed: req.IsCollapsed,
		CreatedAt:   time.Now(),
	}
	if err := uow.FolderNodeRepository().Create(ctx, &folder); err != nil {
		return nil, err
	}
	return dto.NewFolderNodeResponse(&folder), nil
}

func (s *folderNodeService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFolderNodeRequest) (*dto.FolderNodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderNodeRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, nil
	}

	if req.ParentId != nil {
		folder.ParentId = req.ParentId
	}
	if req.NodeType != nil {
		folder.NodeType = *req.NodeType
	}
	if req.Category != nil {
		folder.Category = req.Category
	}
	if req.ObjectType != nil {
		folder.ObjectType = req.ObjectType
	}
	if req.Title != nil {
		folder.Title = *req.Title
	}
	if req.SortOrder != nil {
		folder.SortOrder = *req.SortOrder
	}
	if req.IsCollapsed != nil {
		folder.IsCollapsed = *req.IsCollapsed
	}

	if err := uow.FolderNodeRepository().Update(ctx, folder); err != nil {
		return nil, err
	}
	return dto.NewFolderNodeResponse(folder), nil
}

func (s *folderNodeService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FolderNodeRepository().Delete(ctx, id)
}
