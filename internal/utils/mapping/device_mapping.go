package mapping

import (
	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/models"
)

// ToModelDevice converts a domain Device to a model Device
func ToModelDevice(d domain.Device) models.Device {
	return models.Device{
		DeviceID:        d.DeviceID,
		NSN:             d.NSN,
		DeviceType:      string(d.Type),
		Manufacturer:    d.Manufacturer,
		Model:           d.Model,
		Location:        d.Location,
		EndOfLife:       d.EndOfLife,
		Status:          string(d.Status),
		EligibleUpgrade: d.EligibleUpgrade,
		EntityID:        d.EntityID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDevice converts a model Device to a domain Device
func ToDomainDevice(m models.Device) domain.Device {
	return domain.Device{
		DeviceID:        m.DeviceID,
		NSN:             m.NSN,
		Type:            domain.DeviceType(m.DeviceType),
		Manufacturer:    m.Manufacturer,
		Model:           m.Model,
		Location:        m.Location,
		EndOfLife:       m.EndOfLife,
		Status:          domain.DeviceStatus(m.Status),
		EligibleUpgrade: m.EligibleUpgrade,
		EntityID:        m.EntityID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDeviceSlice converts a slice of model Devices to domain Devices
func ToDomainDeviceSlice(ms []models.Device) []domain.Device {
	ds := make([]domain.Device, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDevice(m)
	}
	return ds
}
