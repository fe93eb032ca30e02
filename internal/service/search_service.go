package service

import (
	"context"
	"strings"

	"exec-workspace-be/internal/dto"
	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/specification"
	"exec-workspace-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ISearchService interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

type searchService struct {
	uowFactory  unitofwork.RepositoryFactory
	workspaceId uuid.UUID
}

func NewSearchService(uowFactory unitofwork.RepositoryFactory, workspaceId uuid.UUID) ISearchService {
	return &searchService{
		uowFactory:  uowFactory,
		workspaceId: workspaceId,
	}
}

// Search runs the object and note queries concurrently. An empty or
// whitespace-only query short-circuits to empty result lists.
func (s *searchService) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &dto.SearchResponse{
			Objects: []*dto.ObjectResponse{},
			Notes:   []*dto.NoteResponse{},
		}, nil
	}

	var (
		objects []*entity.ExecObject
		notes   []*entity.Note
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		uow := s.uowFactory.NewUnitOfWork(gctx)
		found, err := uow.ExecObjectRepository().FindAll(gctx,
			specification.ByWorkspaceID{WorkspaceID: s.workspaceId},
			specification.ObjectSearchQuery{Query: query},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		if err != nil {
			return err
		}
		objects = found
		return nil
	})

	g.Go(func() error {
		uow := s.uowFactory.NewUnitOfWork(gctx)
		found, err := uow.NoteRepository().FindAll(gctx,
			specification.ByWorkspaceID{WorkspaceID: s.workspaceId},
			specification.NoteSearchQuery{Query: query},
			specification.OrderBy{Field: "updated_at", Desc: true},
		)
		if err != nil {
			return err
		}
		notes = found
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.SearchResponse{
		Objects: dto.NewObjectResponses(objects),
		Notes:   dto.NewNoteResponses(notes),
	}, nil
}
