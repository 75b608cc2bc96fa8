package services

import (
	"context"

	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/SscSPs/trt_portal/internal/dto"
)

// DeviceReaderSvc defines read operations for devices.
type DeviceReaderSvc interface {
	GetDevice(ctx context.Context, deviceID string) (*domain.Device, error)
	ListDevices(ctx context.Context, params dto.ListDevicesParams) (*dto.ListDevicesResponse, error)
	SummarizeDevices(ctx context.Context, entityID *int64) (*domain.DeviceSummary, error)
	// UpcomingEndOfLife lists non-retired devices reaching end of life within days.
	UpcomingEndOfLife(ctx context.Context, days int, entityID *int64) ([]domain.Device, error)
}

// DeviceWriterSvc defines write operations for devices.
type DeviceWriterSvc interface {
	CreateDevice(ctx context.Context, req dto.CreateDeviceRequest, creatorUserID int64) (*domain.Device, error)
	UpdateDevice(ctx context.Context, deviceID string, req dto.UpdateDeviceRequest, userID int64) (*domain.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) error
}

// DeviceSvcFacade combines all device-related service interfaces
type DeviceSvcFacade interface {
	DeviceReaderSvc
	DeviceWriterSvc
}
