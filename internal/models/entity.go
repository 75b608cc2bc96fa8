package models

// Entity is the entities table row.
type Entity struct {
	EntityID    int64  `db:"entity_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Code        string `db:"code"`
	ParentID    *int64 `db:"parent_id"` // Nullable
	AuditFields
}
