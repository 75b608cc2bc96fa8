package domain

// Entity is an organizational unit (owner/operator or store) in a parent/child hierarchy.
// Root entities have a nil ParentID.
type Entity struct {
	EntityID    int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Code        string `json:"code"`
	ParentID    *int64 `json:"parentId,omitempty"`
	AuditFields
}

// IsRoot reports whether the entity has no parent.
func (e Entity) IsRoot() bool {
	return e.ParentID == nil
}
