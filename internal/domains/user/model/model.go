package model

import "shareit/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID    = "id"
	FieldEmail = "email"
	FieldName  = "name"
)

// User is read only here. Accounts are managed by the user service that owns
// the table.
type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	model.Metadata
}
