package model

// Metadata carries the audit columns every table has. Timestamps are filled
// by column defaults and by shared.TransformFields on update.
type Metadata struct {
	CreatedBy  string `db:"created_by"`
	ModifiedBy string `db:"modified_by"`
}

// CreatedBy returns the metadata of a row the actor is inserting.
func CreatedBy(actor string) Metadata {
	return Metadata{CreatedBy: actor, ModifiedBy: actor}
}
