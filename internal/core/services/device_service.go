package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/trt_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/dto"
	"github.com/SscSPs/trt_portal/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultDevicePageSize = 50
	maxDevicePageSize     = 200
)

type deviceService struct {
	BaseService
	deviceRepo portsrepo.DeviceRepositoryFacade
	entityRepo portsrepo.EntityReader
	now        func() time.Time
}

// DeviceServiceOption is a functional option for configuring the device service
type DeviceServiceOption func(*deviceService)

// WithDeviceEntityReader lets the service verify owning entities on writes.
func WithDeviceEntityReader(repo portsrepo.EntityReader) DeviceServiceOption {
	return func(s *deviceService) {
		s.entityRepo = repo
	}
}

// WithDeviceClock overrides the clock used for end-of-life reports.
func WithDeviceClock(now func() time.Time) DeviceServiceOption {
	return func(s *deviceService) {
		s.now = now
	}
}

// NewDeviceService creates a new device service with the provided options.
func NewDeviceService(deviceRepo portsrepo.DeviceRepositoryFacade, options ...DeviceServiceOption) portssvc.DeviceSvcFacade {
	svc := &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DeviceSvcFacade = (*deviceService)(nil)

func (s *deviceService) GetDevice(ctx context.Context, deviceID string) (*domain.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find device", slog.String("device_id", deviceID))
		}
		return nil, err
	}
	return device, nil
}

func (s *deviceService) ListDevices(ctx context.Context, params dto.ListDevicesParams) (*dto.ListDevicesResponse, error) {
	filter := domain.DeviceFilter{EntityID: params.EntityID}
	if params.Status != "" {
		status := domain.DeviceStatus(params.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid device status %q", params.Status))
		}
		filter.Status = &status
	}
	if params.Type != "" {
		deviceType := domain.DeviceType(params.Type)
		if !deviceType.IsValid() {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid device type %q", params.Type))
		}
		filter.Type = &deviceType
	}

	var nextToken *string
	if params.NextToken != nil && *params.NextToken != "" {
		if _, err := pagination.DecodeToken(*params.NextToken); err != nil {
			s.LogDebug(ctx, "Rejected malformed device page token", slog.String("error", err.Error()))
			return nil, apperrors.NewValidationFailedError("invalid nextToken")
		}
		nextToken = params.NextToken
	}

	limit := pagination.ClampLimit(params.Limit, defaultDevicePageSize, maxDevicePageSize)
	devices, newNextToken, err := s.deviceRepo.ListDevices(ctx, filter, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list devices", slog.Int("limit", limit))
		return nil, err
	}

	return &dto.ListDevicesResponse{
		Devices:   dto.ToDeviceResponses(devices),
		NextToken: newNextToken,
	}, nil
}

func (s *deviceService) SummarizeDevices(ctx context.Context, entityID *int64) (*domain.DeviceSummary, error) {
	summary, err := s.deviceRepo.SummarizeDevices(ctx, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize devices")
		return nil, err
	}
	return &summary, nil
}

func (s *deviceService) UpcomingEndOfLife(ctx context.Context, days int, entityID *int64) ([]domain.Device, error) {
	if days <= 0 {
		return nil, apperrors.NewValidationFailedError("days must be positive")
	}
	cutoff := s.now().AddDate(0, 0, days)
	devices, err := s.deviceRepo.ListDevicesEndingBefore(ctx, cutoff, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list devices nearing end of life", slog.Int("days", days))
		return nil, err
	}
	if devices == nil {
		devices = []domain.Device{}
	}
	return devices, nil
}

func (s *deviceService) CreateDevice(ctx context.Context, req dto.CreateDeviceRequest, creatorUserID int64) (*domain.Device, error) {
	deviceType := domain.DeviceType(req.Type)
	if !deviceType.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid device type %q", req.Type))
	}
	status := domain.DeviceStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid device status %q", req.Status))
	}
	if err := requireEntity(ctx, s.entityRepo, req.EntityID); err != nil {
		return nil, err
	}

	now := time.Now()
	device := domain.Device{
		DeviceID:        uuid.NewString(),
		NSN:             strings.TrimSpace(req.NSN),
		Type:            deviceType,
		Manufacturer:    req.Manufacturer,
		Model:           req.Model,
		Location:        req.Location,
		EndOfLife:       req.EndOfLife,
		Status:          status,
		EligibleUpgrade: req.EligibleUpgrade,
		EntityID:        req.EntityID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.deviceRepo.SaveDevice(ctx, device); err != nil {
		s.LogError(ctx, err, "Failed to save device", slog.String("nsn", device.NSN))
		return nil, err
	}

	s.LogInfo(ctx, "Device created successfully", slog.String("device_id", device.DeviceID))
	return &device, nil
}

func (s *deviceService) UpdateDevice(ctx context.Context, deviceID string, req dto.UpdateDeviceRequest, userID int64) (*domain.Device, error) {
	device, err := s.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if req.NSN != nil {
		device.NSN = strings.TrimSpace(*req.NSN)
	}
	if req.Type != nil {
		deviceType := domain.DeviceType(*req.Type)
		if !deviceType.IsValid() {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid device type %q", *req.Type))
		}
		device.Type = deviceType
	}
	if req.Manufacturer != nil {
		device.Manufacturer = *req.Manufacturer
	}
	if req.Model != nil {
		device.Model = *req.Model
	}
	if req.Location != nil {
		device.Location = *req.Location
	}
	if req.EndOfLife != nil {
		device.EndOfLife = *req.EndOfLife
	}
	if req.Status != nil {
		status := domain.DeviceStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationFailedError(fmt.Sprintf("invalid device status %q", *req.Status))
		}
		device.Status = status
	}
	if req.EligibleUpgrade != nil {
		device.EligibleUpgrade = req.EligibleUpgrade
	}
	if req.EntityID != nil {
		if err := requireEntity(ctx, s.entityRepo, req.EntityID); err != nil {
			return nil, err
		}
		device.EntityID = req.EntityID
	}

	device.LastUpdatedAt = time.Now()
	device.LastUpdatedBy = userID
	if err := s.deviceRepo.UpdateDevice(ctx, *device); err != nil {
		s.LogError(ctx, err, "Failed to update device", slog.String("device_id", deviceID))
		return nil, err
	}

	s.LogInfo(ctx, "Device updated successfully", slog.String("device_id", deviceID))
	return device, nil
}

func (s *deviceService) DeleteDevice(ctx context.Context, deviceID string) error {
	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete device", slog.String("device_id", deviceID))
		}
		return err
	}
	s.LogInfo(ctx, "Device deleted", slog.String("device_id", deviceID))
	return nil
}
