package model

import "github.com/google/uuid"

// ObjectTag is the join row attaching a Tag to an ExecObject.
type ObjectTag struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ObjectId uuid.UUID `gorm:"type:uuid;not null;index"`
	TagId    uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (ObjectTag) TableName() string {
	return "object_tags"
}
