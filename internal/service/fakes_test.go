package service

import (
	"context"
	"strings"

	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/repository/contract"
	"exec-workspace-be/internal/repository/specification"
	"exec-workspace-be/internal/repository/unitofwork"
	"exec-workspace-be/pkg/events"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. Every repository shares one
// fakeStore so cross-repository flows (cascade deletes, tag joins) are
// observable from a single place.

type fakeStore struct {
	workspaces  []*entity.Workspace
	objects     []*entity.ExecObject
	notes       []*entity.Note
	tags        []*entity.Tag
	actionItems []*entity.ActionItem
	folders     []*entity.FolderNode
	goalPeriods []*entity.GoalPeriod
	noteLinks   []*entity.NoteLink
	objectTags  []*entity.ObjectTag

	begins    int
	commits   int
	rollbacks int
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.store.begins++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.store.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.store.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) WorkspaceRepository() contract.WorkspaceRepository {
	return &fakeWorkspaceRepo{store: u.store}
}

func (u *fakeUnitOfWork) FolderNodeRepository() contract.FolderNodeRepository {
	return &fakeFolderNodeRepo{store: u.store}
}

func (u *fakeUnitOfWork) ExecObjectRepository() contract.ExecObjectRepository {
	return &fakeExecObjectRepo{store: u.store}
}

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}

func (u *fakeUnitOfWork) TagRepository() contract.TagRepository {
	return &fakeTagRepo{store: u.store}
}

func (u *fakeUnitOfWork) NoteLinkRepository() contract.NoteLinkRepository {
	return &fakeNoteLinkRepo{store: u.store}
}

func (u *fakeUnitOfWork) ActionItemRepository() contract.ActionItemRepository {
	return &fakeActionItemRepo{store: u.store}
}

func (u *fakeUnitOfWork) GoalPeriodRepository() contract.GoalPeriodRepository {
	return &fakeGoalPeriodRepo{store: u.store}
}

func (u *fakeUnitOfWork) ObjectTagRepository() contract.ObjectTagRepository {
	return &fakeObjectTagRepo{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

// capturePublisher records published events for assertions.
type capturePublisher struct {
	published []events.Event
}

func (p *capturePublisher) Publish(ctx context.Context, event events.Event) {
	p.published = append(p.published, event)
}

// Spec matchers shared by the fake repositories. The fakes type-switch on
// the concrete specifications the services actually use.

type rowFilter struct {
	id          *uuid.UUID
	ids         []uuid.UUID
	workspaceId *uuid.UUID
	objectId    *uuid.UUID
	noteId      *uuid.UUID
	tagId       *uuid.UUID
	objectQuery string
	noteQuery   string
}

func buildFilter(specs []specification.Specification) rowFilter {
	var f rowFilter
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			id := spec.ID
			f.id = &id
		case specification.ByIDs:
			f.ids = spec.IDs
		case specification.ByWorkspaceID:
			id := spec.WorkspaceID
			f.workspaceId = &id
		case specification.ByObjectID:
			id := spec.ObjectID
			f.objectId = &id
		case specification.ByNoteID:
			id := spec.NoteID
			f.noteId = &id
		case specification.ByTagID:
			id := spec.TagID
			f.tagId = &id
		case specification.ObjectSearchQuery:
			f.objectQuery = spec.Query
		case specification.NoteSearchQuery:
			f.noteQuery = spec.Query
		}
	}
	return f
}

func (f rowFilter) matchesIds(id uuid.UUID) bool {
	if f.id != nil && *f.id != id {
		return false
	}
	if f.ids != nil {
		found := false
		for _, candidate := range f.ids {
			if candidate == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Workspace

type fakeWorkspaceRepo struct {
	store *fakeStore
}

func (r *fakeWorkspaceRepo) Create(ctx context.Context, workspace *entity.Workspace) error {
	r.store.workspaces = append(r.store.workspaces, workspace)
	return nil
}

func (r *fakeWorkspaceRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error) {
	f := buildFilter(specs)
	for _, w := range r.store.workspaces {
		if f.matchesIds(w.Id) {
			return w, nil
		}
	}
	return nil, nil
}

func (r *fakeWorkspaceRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.workspaces)), nil
}

// ExecObject

type fakeExecObjectRepo struct {
	store *fakeStore
}

func (r *fakeExecObjectRepo) Create(ctx context.Context, object *entity.ExecObject) error {
	r.store.objects = append(r.store.objects, object)
	return nil
}

func (r *fakeExecObjectRepo) Update(ctx context.Context, object *entity.ExecObject) error {
	for i, o := range r.store.objects {
		if o.Id == object.Id {
			r.store.objects[i] = object
			return nil
		}
	}
	return nil
}

func (r *fakeExecObjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.objects[:0]
	for _, o := range r.store.objects {
		if o.Id != id {
			kept = append(kept, o)
		}
	}
	r.store.objects = kept
	return nil
}

func (r *fakeExecObjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExecObject, error) {
	found, err := r.FindAll(ctx, specs...)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func (r *fakeExecObjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExecObject, error) {
	f := buildFilter(specs)
	found := []*entity.ExecObject{}
	for _, o := range r.store.objects {
		if !f.matchesIds(o.Id) {
			continue
		}
		if f.workspaceId != nil && o.WorkspaceId != *f.workspaceId {
			continue
		}
		if f.objectQuery != "" {
			description := ""
			if o.Description != nil {
				description = *o.Description
			}
			if !containsFold(o.Title, f.objectQuery) && !containsFold(description, f.objectQuery) {
				continue
			}
		}
		found = append(found, o)
	}
	return found, nil
}

func (r *fakeExecObjectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, err := r.FindAll(ctx, specs...)
	return int64(len(found)), err
}

// Note

type fakeNoteRepo struct {
	store *fakeStore
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	r.store.notes = append(r.store.notes, note)
	return nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	for i, n := range r.store.notes {
		if n.Id == note.Id {
			r.store.notes[i] = note
			return nil
		}
	}
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.notes[:0]
	for _, n := range r.store.notes {
		if n.Id != id {
			kept = append(kept, n)
		}
	}
	r.store.notes = kept
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	found, err := r.FindAll(ctx, specs...)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	f := buildFilter(specs)
	found := []*entity.Note{}
	for _, n := range r.store.notes {
		if !f.matchesIds(n.Id) {
			continue
		}
		if f.workspaceId != nil && n.WorkspaceId != *f.workspaceId {
			continue
		}
		if f.noteQuery != "" && !containsFold(n.Title, f.noteQuery) {
			continue
		}
		found = append(found, n)
	}
	return found, nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, err := r.FindAll(ctx, specs...)
	return int64(len(found)), err
}

// Tag

type fakeTagRepo struct {
	store *fakeStore
}

func (r *fakeTagRepo) Create(ctx context.Context, tag *entity.Tag) error {
	r.store.tags = append(r.store.tags, tag)
	return nil
}

func (r *fakeTagRepo) Update(ctx context.Context, tag *entity.Tag) error {
	for i, t := range r.store.tags {
		if t.Id == tag.Id {
			r.store.tags[i] = tag
			return nil
		}
	}
	return nil
}

func (r *fakeTagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.tags[:0]
	for _, t := range r.store.tags {
		if t.Id != id {
			kept = append(kept, t)
		}
	}
	r.store.tags = kept
	return nil
}

func (r *fakeTagRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	found, err := r.FindAll(ctx, specs...)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func (r *fakeTagRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	f := buildFilter(specs)
	found := []*entity.Tag{}
	for _, t := range r.store.tags {
		if !f.matchesIds(t.Id) {
			continue
		}
		if f.workspaceId != nil && t.WorkspaceId != *f.workspaceId {
			continue
		}
		found = append(found, t)
	}
	return found, nil
}

func (r *fakeTagRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, err := r.FindAll(ctx, specs...)
	return int64(len(found)), err
}

// ActionItem

type fakeActionItemRepo struct {
	store *fakeStore
}

func (r *fakeActionItemRepo) Create(ctx context.Context, item *entity.ActionItem) error {
	r.store.actionItems = append(r.store.actionItems, item)
	return nil
}

func (r *fakeActionItemRepo) Update(ctx context.Context, item *entity.ActionItem) error {
	for i, a := range r.store.actionItems {
		if a.Id == item.Id {
			r.store.actionItems[i] = item
			return nil
		}
	}
	return nil
}

func (r *fakeActionItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.actionItems[:0]
	for _, a := range r.store.actionItems {
		if a.Id != id {
			kept = append(kept, a)
		}
	}
	r.store.actionItems = kept
	return nil
}

func (r *fakeActionItemRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionItem, error) {
	found, err := r.FindAll(ctx, specs...)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func (r *fakeActionItemRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionItem, error) {
	f := buildFilter(specs)
	found := []*entity.ActionItem{}
	for _, a := range r.store.actionItems {
		if !f.matchesIds(a.Id) {
			continue
		}
		if f.workspaceId != nil && a.WorkspaceId != *f.workspaceId {
			continue
		}
		found = append(found, a)
	}
	return found, nil
}

func (r *fakeActionItemRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, err := r.FindAll(ctx, specs...)
	return int64(len(found)), err
}

// FolderNode

type fakeFolderNodeRepo struct {
	store *fakeStore
}

func (r *fakeFolderNodeRepo) Create(ctx context.Context, folder *entity.FolderNode) error {
	r.store.folders = append(r.store.folders, folder)
	return nil
}

func (r *fakeFolderNodeRepo) Update(ctx context.Context, folder *entity.FolderNode) error {
	for i, f := range r.store.folders {
		if f.Id == folder.Id {
			r.store.folders[i] = folder
			return nil
		}
	}
	return nil
}

func (r *fakeFolderNodeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.folders[:0]
	for _, f := range r.store.folders {
		if f.Id != id {
			kept = append(kept, f)
		}
	}
	r.store.folders = kept
	return nil
}

func (r *fakeFolderNodeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FolderNode, error) {
	found, err := r.FindAll(ctx, specs...)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func (r *fakeFolderNodeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FolderNode, error) {
	f := buildFilter(specs)
	found := []*entity.FolderNode{}
	for _, folder := range r.store.folders {
		if !f.matchesIds(folder.Id) {
			continue
		}
		if f.workspaceId != nil && folder.WorkspaceId != *f.workspaceId {
			continue
		}
		found = append(found, folder)
	}
	return found, nil
}

// GoalPeriod

type fakeGoalPeriodRepo struct {
	store *fakeStore
}

func (r *fakeGoalPeriodRepo) Create(ctx context.Context, period *entity.GoalPeriod) error {
	r.store.goalPeriods = append(r.store.goalPeriods, period)
	return nil
}

func (r *fakeGoalPeriodRepo) Update(ctx context.Context, period *entity.GoalPeriod) error {
	for i, g := range r.store.goalPeriods {
		if g.Id == period.Id {
			r.store.goalPeriods[i] = period
			return nil
		}
	}
	return nil
}

func (r *fakeGoalPeriodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.store.goalPeriods[:0]
	for _, g := range r.store.goalPeriods {
		if g.Id != id {
			kept = append(kept, g)
		}
	}
	r.store.goalPeriods = kept
	return nil
}

func (r *fakeGoalPeriodRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GoalPeriod, error) {
	found, err := r.FindAll(ctx, specs...)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func (r *fakeGoalPeriodRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GoalPeriod, error) {
	f := buildFilter(specs)
	found := []*entity.GoalPeriod{}
	for _, g := range r.store.goalPeriods {
		if !f.matchesIds(g.Id) {
			continue
		}
		if f.workspaceId != nil && g.WorkspaceId != *f.workspaceId {
			continue
		}
		found = append(found, g)
	}
	return found, nil
}

// NoteLink

type fakeNoteLinkRepo struct {
	store *fakeStore
}

func (r *fakeNoteLinkRepo) Create(ctx context.Context, link *entity.NoteLink) error {
	r.store.noteLinks = append(r.store.noteLinks, link)
	return nil
}

func (r *fakeNoteLinkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteLink, error) {
	f := buildFilter(specs)
	found := []*entity.NoteLink{}
	for _, l := range r.store.noteLinks {
		if f.noteId != nil && l.NoteId != *f.noteId {
			continue
		}
		found = append(found, l)
	}
	return found, nil
}

func (r *fakeNoteLinkRepo) DeleteAllByNoteId(ctx context.Context, noteId uuid.UUID) error {
	kept := r.store.noteLinks[:0]
	for _, l := range r.store.noteLinks {
		if l.NoteId != noteId {
			kept = append(kept, l)
		}
	}
	r.store.noteLinks = kept
	return nil
}

// ObjectTag

type fakeObjectTagRepo struct {
	store *fakeStore
}

func (r *fakeObjectTagRepo) Create(ctx context.Context, objectTag *entity.ObjectTag) error {
	r.store.objectTags = append(r.store.objectTags, objectTag)
	return nil
}

func (r *fakeObjectTagRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ObjectTag, error) {
	f := buildFilter(specs)
	found := []*entity.ObjectTag{}
	for _, ot := range r.store.objectTags {
		if f.objectId != nil && ot.ObjectId != *f.objectId {
			continue
		}
		if f.tagId != nil && ot.TagId != *f.tagId {
			continue
		}
		found = append(found, ot)
	}
	return found, nil
}

func (r *fakeObjectTagRepo) DeleteAllByTagId(ctx context.Context, tagId uuid.UUID) error {
	kept := r.store.objectTags[:0]
	for _, ot := range r.store.objectTags {
		if ot.TagId != tagId {
			kept = append(kept, ot)
		}
	}
	r.store.objectTags = kept
	return nil
}

func (r *fakeObjectTagRepo) DeleteByObjectAndTag(ctx context.Context, objectId, tagId uuid.UUID) error {
	kept := r.store.objectTags[:0]
	for _, ot := range r.store.objectTags {
		if ot.ObjectId == objectId && ot.TagId == tagId {
			continue
		}
		kept = append(kept, ot)
	}
	r.store.objectTags = kept
	return nil
}
