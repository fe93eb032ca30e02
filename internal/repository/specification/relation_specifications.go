package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByObjectID filters rows scoped to one exec object (notes, object_tags)
type ByObjectID struct {
	ObjectID uuid.UUID
}

func (s ByObjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("object_id = ?", s.ObjectID)
}

// ByNoteID filters note_links belonging to one note
type ByNoteID struct {
	NoteID uuid.UUID
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

// ByTagID filters object_tags referencing one tag
type ByTagID struct {
	TagID uuid.UUID
}

func (s ByTagID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tag_id = ?", s.TagID)
}

// ByRelatedObjectID filters action items attached to one exec object
type ByRelatedObjectID struct {
	ObjectID uuid.UUID
}

func (s ByRelatedObjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("related_object_id = ?", s.ObjectID)
}
