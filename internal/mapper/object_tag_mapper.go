package mapper

import (
	"exec-workspace-be/internal/entity"
	"exec-workspace-be/internal/model"
)

type ObjectTagMapper struct{}

func NewObjectTagMapper() *ObjectTagMapper {
	return &ObjectTagMapper{}
}

func (m *ObjectTagMapper) ToEntity(ot *model.ObjectTag) *entity.ObjectTag {
	if ot == nil {
		return nil
	}
	return &entity.ObjectTag{
		Id:       ot.Id,
		ObjectId: ot.ObjectId,
		TagId:    ot.TagId,
	}
}

func (m *ObjectTagMapper) ToModel(ot *entity.ObjectTag) *model.ObjectTag {
	if ot == nil {
		return nil
	}
	return &model.ObjectTag{
		Id:       ot.Id,
		ObjectId: ot.ObjectId,
		TagId:    ot.TagId,
	}
}

func (m *ObjectTagMapper) ToEntities(rows []*model.ObjectTag) []*entity.ObjectTag {
	entities := make([]*entity.ObjectTag, len(rows))
	for i, ot := range rows {
		entities[i] = m.ToEntity(ot)
	}
	return entities
}
