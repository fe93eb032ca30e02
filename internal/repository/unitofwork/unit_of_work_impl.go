package unitofwork

import (
	"context"
	"fmt"

	"exec-workspace-be/internal/repository/contract"
	"exec-workspace-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) WorkspaceRepository() contract.WorkspaceRepository {
	return implementation.NewWorkspaceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FolderNodeRepository() contract.FolderNodeRepository {
	return implementation.NewFolderNodeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ExecObjectRepository() contract.ExecObjectRepository {
	return implementation.NewExecObjectRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NoteRepository() contract.NoteRepository {
	return implementation.NewNoteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TagRepository() contract.TagRepository {
	return implementation.NewTagRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NoteLinkRepository() contract.NoteLinkRepository {
	return implementation.NewNoteLinkRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ActionItemRepository() contract.ActionItemRepository {
	return implementation.NewActionItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GoalPeriodRepository() contract.GoalPeriodRepository {
	return implementation.NewGoalPeriodRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ObjectTagRepository() contract.ObjectTagRepository {
	return implementation.NewObjectTagRepository(u.getDB())
}
