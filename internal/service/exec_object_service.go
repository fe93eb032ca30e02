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

type IExecObjectService interface {
	List(ctx context.Context) ([]*dto.ObjectResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ObjectResponse, error)
	Create(ctx context.Context, req *dto.CreateObjectRequest) (*dto.ObjectResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateObjectRequest) (*dto.ObjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListTags(ctx context.Context, objectId uuid.UUID) ([]*dto.TagResponse, error)
	AttachTag(ctx context.Context, objectId uuid.UUID, req *dto.AttachTagRequest) (*dto.ObjectTagResponse, error)
	DetachTag(ctx context.Context, objectId, tagId uuid.UUID) error
}

type execObjectService struct {
	uowFactory  unitofwork.RepositoryFactory
	workspaceId uuid.UUID
	activity    IActivityPublisher
}

func NewExecObjectService(
	uowFactory unitofwork.RepositoryFactory,
	workspaceId uuid.UUID,
	activity IActivityPublisher,
) IExecObjectService {
	return &execObjectService{
		uowFactory:  uowFactory,
		workspaceId: workspaceId,
		activity:    activity,
	}
}

func (s *execObjectService) List(ctx context.Context) ([]*dto.ObjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	objects, err := uow.ExecObjectRepository().FindAll(ctx,
		specification.ByWorkspaceID{WorkspaceID: s.workspaceId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewObjectResponses(objects), nil
}

func (s *execObjectService) Show(ctx context.Context, id uuid.UUID) (*dto.ObjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	object, err := uow.ExecObjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if object == nil {
		return nil, nil
	}
	return dto.NewObjectResponse(object), nil
}

func (s *execObjectService) Create(ctx context.Context, req *dto.CreateObjectRequest) (*dto.ObjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	object := entity.ExecObject{
		Id:          uuid.New(),
		WorkspaceId: s.workspaceId,
		FolderId:    req.FolderId,
		ObjectType:  req.ObjectType,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Metadata:    req.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.ExecObjectRepository().Create(ctx, &object); err != nil {
		return nil, err
	}

	s.activity.Publish(ctx, events.BaseEvent{
		Type: "OBJECT_CREATED",
		Data: map[string]interface{}{
			"object_id":   object.Id,
			"object_type": object.ObjectType,
			"title":       object.Title,
		},
		OccurredAt: now,
	})

	return dto.NewObjectResponse(&object), nil
}

func (s *execObjectService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateObjectRequest) (*dto.ObjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	object, err := uow.ExecObjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if object == nil {
		return nil, nil
	}

	if req.ObjectType != nil {
		object.ObjectType = *req.ObjectType
	}
	if req.Title != nil {
		object.Title = *req.Title
	}
	if req.Description != nil {
		object.Description = req.Description
	}
	if req.Status != nil {
		object.Status = req.Status
	}
	if req.FolderId != nil {
		object.FolderId = req.FolderId
	}
	if req.Metadata != nil {
		object.Metadata = req.Metadata
	}
	object.UpdatedAt = time.Now()

	if err := uow.ExecObjectRepository().Update(ctx, object); err != nil {
		return nil, err
	}

	return dto.NewObjectResponse(object), nil
}

func (s *execObjectService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ExecObjectRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Publish(ctx, events.BaseEvent{
		Type:       "OBJECT_DELETED",
		Data:       map[string]interface{}{"object_id": id},
		OccurredAt: time.Now(),
	})
	return nil
}

func (s *execObjectService) ListTags(ctx context.Context, objectId uuid.UUID) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	object, err := uow.ExecObjectRepository().FindOne(ctx, specification.ByID{ID: objectId})
	if err != nil {
		return nil, err
	}
	if object == nil {
		return nil, nil
	}

	objectTags, err := uow.ObjectTagRepository().FindAll(ctx, specification.ByObjectID{ObjectID: objectId})
	if err != nil {
		return nil, err
	}
	if len(objectTags) == 0 {
		return []*dto.TagResponse{}, nil
	}

	tagIds := make([]uuid.UUID, len(objectTags))
	for i, ot := range objectTags {
		tagIds[i] = ot.TagId
	}

	tags, err := uow.TagRepository().FindAll(ctx,
		specification.ByIDs{IDs: tagIds},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}
	return dto.NewTagResponses(tags), nil
}

func (s *execObjectService) AttachTag(ctx context.Context, objectId uuid.UUID, req *dto.AttachTagRequest) (*dto.ObjectTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	object, err := uow.ExecObjectRepository().FindOne(ctx, specification.ByID{ID: objectId})
	if err != nil {
		return nil, err
	}
	tag, err := uow.TagRepository().FindOne(ctx, specification.ByID{ID: req.TagId})
	if err != nil {
		return nil, err
	}
	if object == nil || tag == nil {
		return nil, nil
	}

	// Attaching the same tag twice is a no-op returning the existing row
	existing, err := uow.ObjectTagRepository().FindAll(ctx,
		specification.ByObjectID{ObjectID: objectId},
		specification.ByTagID{TagID: req.TagId},
	)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return dto.NewObjectTagResponse(existing[0]), nil
	}

	objectTag := entity.ObjectTag{
		Id:       uuid.New(),
		ObjectId: objectId,
		TagId:    req.TagId,
	}
	if err := uow.ObjectTagRepository().Create(ctx, &objectTag); err != nil {
		return nil, err
	}
	return dto.NewObjectTagResponse(&objectTag), nil
}

func (s *execObjectService) DetachTag(ctx context.Context, objectId, tagId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ObjectTagRepository().DeleteByObjectAndTag(ctx, objectId, tagId)
}
