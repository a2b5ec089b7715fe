package model

import "shareit/shared/model"

const (
	TableName  = "items"
	EntityName = "item"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldAvailable   = "is_available"
	FieldOwnerID     = "owner_id"
)

type Item struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Available   bool   `db:"is_available"`
	OwnerID     string `db:"owner_id"`
	model.Metadata
}

func (i Item) IsOwnedBy(userID string) bool {
	return i.OwnerID == userID
}
