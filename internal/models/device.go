package models

import "time"

// Device is the devices table row.
type Device struct {
	DeviceID        string    `db:"device_id"`
	NSN             string    `db:"nsn"`
	DeviceType      string    `db:"device_type"`
	Manufacturer    string    `db:"manufacturer"`
	Model           string    `db:"model"`
	Location        string    `db:"location"`
	EndOfLife       time.Time `db:"end_of_life"`
	Status          string    `db:"status"`
	EligibleUpgrade *string   `db:"eligible_upgrade"`
	EntityID        *int64    `db:"entity_id"`
	AuditFields
}
