package service

import (
	"context"
	"time"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWorkspaceService interface {
	GetDefault(ctx context.Context) (*entity.Workspace, error)
}

type workspaceService struct {
	uowFactory unitofwork.RepositoryFactory
	name       string
}

func NewWorkspaceService(uowFactory unitofwork.RepositoryFactory, name string) IWorkspaceService {
	return &workspaceService{
		uowFactory: uowFactory,
		name:       name,
	}
}

// GetDefault returns the single workspace, creating it on first use.
// Called once at startup; the resolved id is passed explicitly to every
// other service.
func (s *workspaceService) GetDefault(ctx context.Context) (*entity.Workspace, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workspace, err := uow.WorkspaceRepository().FindOne(ctx)
	if err != nil {
		return nil, err
	}
	if workspace != nil {
		return workspace, nil
	}

	workspace = &entity.Workspace{
		Id:        uuid.New(),
		Name:      s.name,
		CreatedAt: time.Now(),
	}
	if err := uow.WorkspaceRepository().Create(ctx, workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}
