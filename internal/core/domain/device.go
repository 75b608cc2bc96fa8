package domain

import "time"

// DeviceType classifies a piece of store technology.
type DeviceType string

const (
	DeviceKiosk     DeviceType = "Kiosk"
	DeviceRegister  DeviceType = "Register"
	DeviceDMB       DeviceType = "DMB"
	DeviceEnclosure DeviceType = "Enclosure"
)

// AllDeviceTypes lists the known device types in display order.
var AllDeviceTypes = []DeviceType{DeviceKiosk, DeviceRegister, DeviceDMB, DeviceEnclosure}

// IsValid reports whether t is a known device type.
func (t DeviceType) IsValid() bool {
	switch t {
	case DeviceKiosk, DeviceRegister, DeviceDMB, DeviceEnclosure:
		return true
	}
	return false
}

// DeviceStatus is the refresh lifecycle state of a device.
type DeviceStatus string

const (
	DeviceActive   DeviceStatus = "Active"
	DeviceRequired DeviceStatus = "Required"
	DeviceRetired  DeviceStatus = "Retired"
)

// AllDeviceStatuses lists the known statuses in display order.
var AllDeviceStatuses = []DeviceStatus{DeviceActive, DeviceRequired, DeviceRetired}

// IsValid reports whether s is a known device status.
func (s DeviceStatus) IsValid() bool {
	switch s {
	case DeviceActive, DeviceRequired, DeviceRetired:
		return true
	}
	return false
}

// Device is a tracked piece of technology installed at an entity.
type Device struct {
	DeviceID        string       `json:"id"`
	NSN             string       `json:"nsn"`
	Type            DeviceType   `json:"type"`
	Manufacturer    string       `json:"manufacturer"`
	Model           string       `json:"model"`
	Location        string       `json:"location"`
	EndOfLife       time.Time    `json:"endOfLife"`
	Status          DeviceStatus `json:"status"`
	EligibleUpgrade *string      `json:"eligibleUpgrade,omitempty"`
	EntityID        *int64       `json:"entityId,omitempty"`
	AuditFields
}

// DeviceFilter restricts device listings. Nil fields are ignored.
type DeviceFilter struct {
	EntityID *int64
	Status   *DeviceStatus
	Type     *DeviceType
}

// DeviceSummary counts devices per status and per type.
type DeviceSummary struct {
	Total    int                  `json:"total"`
	ByStatus map[DeviceStatus]int `json:"byStatus"`
	ByType   map[DeviceType]int   `json:"byType"`
}

// NewDeviceSummary returns a summary with every known status and type present at zero.
func NewDeviceSummary() DeviceSummary {
	s := DeviceSummary{
		ByStatus: make(map[DeviceStatus]int, len(AllDeviceStatuses)),
		ByType:   make(map[DeviceType]int, len(AllDeviceTypes)),
	}
	for _, st := range AllDeviceStatuses {
		s.ByStatus[st] = 0
	}
	for _, t := range AllDeviceTypes {
		s.ByType[t] = 0
	}
	return s
}

// Add counts a device in the summary.
func (s *DeviceSummary) Add(d Device) {
	s.Total++
	s.ByStatus[d.Status]++
	s.ByType[d.Type]++
}
