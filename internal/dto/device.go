package dto

import (
	"time"

	"github.com/SscSPs/trt_portal/internal/core/domain"
)

// CreateDeviceRequest defines the data needed to register a device.
type CreateDeviceRequest struct {
	NSN             string    `json:"nsn" binding:"required,max=100"`
	Type            string    `json:"type" binding:"required,oneof=Kiosk Register DMB Enclosure"`
	Manufacturer    string    `json:"manufacturer" binding:"required,max=255"`
	Model           string    `json:"model" binding:"required,max=255"`
	Location        string    `json:"location" binding:"required,max=255"`
	EndOfLife       time.Time `json:"endOfLife" binding:"required"`
	Status          string    `json:"status" binding:"required,oneof=Active Required Retired"`
	EligibleUpgrade *string   `json:"eligibleUpgrade" binding:"omitempty,max=255"`
	EntityID        *int64    `json:"entityId" binding:"omitempty,gt=0"`
}

// UpdateDeviceRequest defines a partial device update.
type UpdateDeviceRequest struct {
	NSN             *string    `json:"nsn" binding:"omitempty,min=1,max=100"`
	Type            *string    `json:"type" binding:"omitempty,oneof=Kiosk Register DMB Enclosure"`
	Manufacturer    *string    `json:"manufacturer" binding:"omitempty,min=1,max=255"`
	Model           *string    `json:"model" binding:"omitempty,min=1,max=255"`
	Location        *string    `json:"location" binding:"omitempty,min=1,max=255"`
	EndOfLife       *time.Time `json:"endOfLife"`
	Status          *string    `json:"status" binding:"omitempty,oneof=Active Required Retired"`
	EligibleUpgrade *string    `json:"eligibleUpgrade" binding:"omitempty,max=255"`
	EntityID        *int64     `json:"entityId" binding:"omitempty,gt=0"`
}

// ListDevicesParams defines query parameters for listing devices.
type ListDevicesParams struct {
	EntityID  *int64  `form:"entityId" binding:"omitempty,gt=0"`
	Status    string  `form:"status" binding:"omitempty,oneof=Active Required Retired"`
	Type      string  `form:"type" binding:"omitempty,oneof=Kiosk Register DMB Enclosure"`
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// UpcomingEndOfLifeParams defines query parameters for the end-of-life report.
type UpcomingEndOfLifeParams struct {
	Days     int    `form:"days,default=180" binding:"min=1,max=3650"`
	EntityID *int64 `form:"entityId" binding:"omitempty,gt=0"`
}

// DeviceSummaryParams defines query parameters for the device summary.
type DeviceSummaryParams struct {
	EntityID *int64 `form:"entityId" binding:"omitempty,gt=0"`
}

// DeviceResponse is the public representation of a device.
type DeviceResponse struct {
	DeviceID        string    `json:"id"`
	NSN             string    `json:"nsn"`
	Type            string    `json:"type"`
	Manufacturer    string    `json:"manufacturer"`
	Model           string    `json:"model"`
	Location        string    `json:"location"`
	EndOfLife       time.Time `json:"endOfLife"`
	Status          string    `json:"status"`
	EligibleUpgrade *string   `json:"eligibleUpgrade"`
	EntityID        *int64    `json:"entityId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ListDevicesResponse wraps a page of devices.
type ListDevicesResponse struct {
	Devices   []DeviceResponse `json:"devices"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToDeviceResponse converts a domain.Device to its DTO.
func ToDeviceResponse(d *domain.Device) DeviceResponse {
	return DeviceResponse{
		DeviceID:        d.DeviceID,
		NSN:             d.NSN,
		Type:            string(d.Type),
		Manufacturer:    d.Manufacturer,
		Model:           d.Model,
		Location:        d.Location,
		EndOfLife:       d.EndOfLife,
		Status:          string(d.Status),
		EligibleUpgrade: d.EligibleUpgrade,
		EntityID:        d.EntityID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.LastUpdatedAt,
	}
}

// ToDeviceResponses converts a slice of devices to DTOs.
func ToDeviceResponses(devices []domain.Device) []DeviceResponse {
	out := make([]DeviceResponse, len(devices))
	for i := range devices {
		out[i] = ToDeviceResponse(&devices[i])
	}
	return out
}
