package specification

import "gorm.io/gorm"

// ObjectSearchQuery matches objects whose title or description contains the
// query. ILIKE keeps the match case-insensitive on Postgres.
type ObjectSearchQuery struct {
	Query string
}

func (s ObjectSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}

// NoteSearchQuery matches notes by title only.
type NoteSearchQuery struct {
	Query string
}

func (s NoteSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ?", pattern)
}
