package entity

import "github.com/google/uuid"

type ObjectTag struct {
	Id       uuid.UUID
	ObjectId uuid.UUID
	TagId    uuid.UUID
}
