package unitofwork

import (
	"context"

	"exec-workspace-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WorkspaceRepository() contract.WorkspaceRepository
	FolderNodeRepository() contract.FolderNodeRepository
	ExecObjectRepository() contract.ExecObjectRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	NoteLinkRepository() contract.NoteLinkRepository
	ActionItemRepository() contract.ActionItemRepository
	GoalPeriodRepository() contract.GoalPeriodRepository
	ObjectTagRepository() contract.ObjectTagRepository
}
