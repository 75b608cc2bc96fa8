package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/trt_portal/internal/core/domain"
)

// DeviceReader defines read operations for devices.
type DeviceReader interface {
	FindDeviceByID(ctx context.Context, deviceID string) (*domain.Device, error)

	// ListDevices returns devices ordered by end of life then ID, starting after
	// nextToken. The returned token is nil on the last page.
	ListDevices(ctx context.Context, filter domain.DeviceFilter, limit int, nextToken *string) ([]domain.Device, *string, error)

	// ListDevicesEndingBefore returns non-retired devices whose end of life is before cutoff, soonest first.
	ListDevicesEndingBefore(ctx context.Context, cutoff time.Time, entityID *int64) ([]domain.Device, error)

	// SummarizeDevices counts devices by status and type.
	SummarizeDevices(ctx context.Context, entityID *int64) (domain.DeviceSummary, error)
}

// DeviceWriter defines write operations for devices.
type DeviceWriter interface {
	SaveDevice(ctx context.Context, device domain.Device) error
	UpdateDevice(ctx context.Context, device domain.Device) error
	DeleteDevice(ctx context.Context, deviceID string) error
}

// DeviceRepositoryFacade combines all device-related repository interfaces
type DeviceRepositoryFacade interface {
	DeviceReader
	DeviceWriter
}
