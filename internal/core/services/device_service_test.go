package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/trt_portal/internal/apperrors"
	"github.com/SscSPs/trt_portal/internal/core/domain"
	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/core/services"
	"github.com/SscSPs/trt_portal/internal/dto"
	"github.com/SscSPs/trt_portal/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DeviceServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockDeviceRepository
	mockEntityRepo *MockEntityRepository
	now            time.Time
	service        portssvc.DeviceSvcFacade
}

func (suite *DeviceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDeviceRepository)
	suite.mockEntityRepo = new(MockEntityRepository)
	suite.now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewDeviceService(
		suite.mockRepo,
		services.WithDeviceEntityReader(suite.mockEntityRepo),
		services.WithDeviceClock(func() time.Time { return suite.now }),
	)
}

func (suite *DeviceServiceTestSuite) TestCreateDevice_Success() {
	ctx := context.Background()
	eol := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	req := dto.CreateDeviceRequest{
		NSN:          " NSN-001 ",
		Type:         "Kiosk",
		Manufacturer: "Acme",
		Model:        "K1",
		Location:     "Lobby",
		EndOfLife:    eol,
		Status:       "Active",
		EntityID:     int64Ptr(3),
	}

	suite.mockEntityRepo.On("GetEntity", ctx, int64(3)).Return(&domain.Entity{EntityID: 3}, nil).Once()
	suite.mockRepo.On("SaveDevice", ctx, mock.MatchedBy(func(d domain.Device) bool {
		return d.DeviceID != "" && d.NSN == "NSN-001" && d.Type == domain.DeviceKiosk &&
			d.Status == domain.DeviceActive && d.EndOfLife.Equal(eol) && *d.EntityID == 3
	})).Return(nil).Once()

	device, err := suite.service.CreateDevice(ctx, req, 1)

	suite.Require().NoError(err)
	suite.NotEmpty(device.DeviceID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockEntityRepo.AssertExpectations(suite.T())
}

func (suite *DeviceServiceTestSuite) TestCreateDevice_UnknownEntity() {
	ctx := context.Background()
	req := dto.CreateDeviceRequest{NSN: "N", Type: "DMB", Status: "Required", EntityID: int64Ptr(404)}
	suite.mockEntityRepo.On("GetEntity", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	device, err := suite.service.CreateDevice(ctx, req, 1)

	suite.Nil(device)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDevice", mock.Anything, mock.Anything)
}

func (suite *DeviceServiceTestSuite) TestCreateDevice_InvalidType() {
	_, err := suite.service.CreateDevice(context.Background(), dto.CreateDeviceRequest{Type: "Toaster", Status: "Active"}, 1)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DeviceServiceTestSuite) TestListDevices_FiltersAndClampsLimit() {
	ctx := context.Background()
	status := domain.DeviceRequired
	next := pagination.EncodeToken(suite.now, "abc")
	params := dto.ListDevicesParams{EntityID: int64Ptr(2), Status: "Required", Limit: 1000}

	suite.mockRepo.On("ListDevices", ctx, domain.DeviceFilter{EntityID: int64Ptr(2), Status: &status}, 200, (*string)(nil)).
		Return([]domain.Device{{DeviceID: "abc", Status: status}}, &next, nil).Once()

	resp, err := suite.service.ListDevices(ctx, params)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Devices, 1)
	suite.Equal("abc", resp.Devices[0].DeviceID)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DeviceServiceTestSuite) TestListDevices_InvalidToken() {
	resp, err := suite.service.ListDevices(context.Background(), dto.ListDevicesParams{NextToken: strPtr("%%%")})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListDevices", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DeviceServiceTestSuite) TestUpcomingEndOfLife_UsesWindow() {
	ctx := context.Background()
	cutoff := suite.now.AddDate(0, 0, 180)
	suite.mockRepo.On("ListDevicesEndingBefore", ctx, cutoff, (*int64)(nil)).Return(nil, nil).Once()

	devices, err := suite.service.UpcomingEndOfLife(ctx, 180, nil)

	suite.Require().NoError(err)
	suite.NotNil(devices)
	suite.Empty(devices)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DeviceServiceTestSuite) TestUpcomingEndOfLife_RejectsNonPositiveDays() {
	_, err := suite.service.UpcomingEndOfLife(context.Background(), 0, nil)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DeviceServiceTestSuite) TestSummarizeDevices() {
	ctx := context.Background()
	summary := domain.NewDeviceSummary()
	summary.Add(domain.Device{Type: domain.DeviceRegister, Status: domain.DeviceActive})
	suite.mockRepo.On("SummarizeDevices", ctx, int64Ptr(1)).Return(summary, nil).Once()

	got, err := suite.service.SummarizeDevices(ctx, int64Ptr(1))

	suite.Require().NoError(err)
	suite.Equal(1, got.Total)
	suite.Equal(1, got.ByType[domain.DeviceRegister])
	suite.Equal(0, got.ByStatus[domain.DeviceRetired])
}

func (suite *DeviceServiceTestSuite) TestUpdateDevice_PartialFields() {
	ctx := context.Background()
	existing := &domain.Device{DeviceID: "d1", NSN: "N1", Type: domain.DeviceKiosk, Status: domain.DeviceActive, Location: "Lobby"}
	suite.mockRepo.On("FindDeviceByID", ctx, "d1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateDevice", ctx, mock.MatchedBy(func(d domain.Device) bool {
		return d.Status == domain.DeviceRetired && d.Location == "Lobby" && d.LastUpdatedBy == 4
	})).Return(nil).Once()

	device, err := suite.service.UpdateDevice(ctx, "d1", dto.UpdateDeviceRequest{Status: strPtr("Retired")}, 4)

	suite.Require().NoError(err)
	suite.Equal(domain.DeviceRetired, device.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DeviceServiceTestSuite) TestDeleteDevice_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteDevice", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	suite.ErrorIs(suite.service.DeleteDevice(ctx, "missing"), apperrors.ErrNotFound)
}

func TestDeviceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeviceServiceTestSuite))
}
