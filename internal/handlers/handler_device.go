package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/dto"
	"github.com/SscSPs/trt_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// deviceHandler handles HTTP requests for the device inventory.
type deviceHandler struct {
	deviceService portssvc.DeviceSvcFacade
}

func newDeviceHandler(ds portssvc.DeviceSvcFacade) *deviceHandler {
	return &deviceHandler{deviceService: ds}
}

func registerDeviceRoutes(rg *gin.RouterGroup, deviceService portssvc.DeviceSvcFacade) {
	h := newDeviceHandler(deviceService)

	devices := rg.Group("/devices")
	{
		devices.GET("", h.listDevices)
		devices.POST("", h.createDevice)
		devices.GET("/summary", h.summarizeDevices)
		devices.GET("/upcoming-eol", h.upcomingEndOfLife)
		devices.GET("/:id", h.getDevice)
		devices.PATCH("/:id", h.updateDevice)
		devices.DELETE("/:id", h.deleteDevice)
	}
}

// createDevice godoc
// @Summary Register a device
// @Tags devices
// @Accept json
// @Produce json
// @Param device body dto.CreateDeviceRequest true "Device details"
// @Success 201 {object} dto.DeviceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /devices [post]
func (h *deviceHandler) createDevice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	device, err := h.deviceService.CreateDevice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create device")
		return
	}

	logger.Info("Device created", slog.String("device_id", device.DeviceID))
	c.JSON(http.StatusCreated, dto.ToDeviceResponse(device))
}

// listDevices godoc
// @Summary List devices
// @Description Lists devices ordered by end of life. Pass nextToken from the previous page to continue.
// @Tags devices
// @Produce json
// @Param entityId query int false "Entity ID"
// @Param status query string false "Status" Enums(Active, Required, Retired)
// @Param type query string false "Device type" Enums(Kiosk, Register, DMB, Enclosure)
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListDevicesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /devices [get]
func (h *deviceHandler) listDevices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDevicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.deviceService.ListDevices(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list devices")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// summarizeDevices godoc
// @Summary Device counts
// @Description Counts devices by status and by type
// @Tags devices
// @Produce json
// @Param entityId query int false "Entity ID"
// @Success 200 {object} domain.DeviceSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /devices/summary [get]
func (h *deviceHandler) summarizeDevices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DeviceSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.deviceService.SummarizeDevices(c.Request.Context(), params.EntityID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to summarize devices")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// upcomingEndOfLife godoc
// @Summary Devices nearing end of life
// @Description Lists non-retired devices whose end of life falls within the next N days, soonest first
// @Tags devices
// @Produce json
// @Param days query int false "Window in days" default(180)
// @Param entityId query int false "Entity ID"
// @Success 200 {array} dto.DeviceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /devices/upcoming-eol [get]
func (h *deviceHandler) upcomingEndOfLife(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.UpcomingEndOfLifeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	devices, err := h.deviceService.UpcomingEndOfLife(c.Request.Context(), params.Days, params.EntityID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list devices nearing end of life")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeviceResponses(devices))
}

// getDevice godoc
// @Summary Get a device
// @Tags devices
// @Produce json
// @Param id path string true "Device ID"
// @Success 200 {object} dto.DeviceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /devices/{id} [get]
func (h *deviceHandler) getDevice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	device, err := h.deviceService.GetDevice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve device")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeviceResponse(device))
}

// updateDevice godoc
// @Summary Update a device
// @Tags devices
// @Accept json
// @Produce json
// @Param id path string true "Device ID"
// @Param device body dto.UpdateDeviceRequest true "Fields to update"
// @Success 200 {object} dto.DeviceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /devices/{id} [patch]
func (h *deviceHandler) updateDevice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	device, err := h.deviceService.UpdateDevice(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update device")
		return
	}
	c.JSON(http.StatusOK, dto.ToDeviceResponse(device))
}

// deleteDevice godoc
// @Summary Delete a device
// @Tags devices
// @Param id path string true "Device ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /devices/{id} [delete]
func (h *deviceHandler) deleteDevice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	deviceID := c.Param("id")
	if err := h.deviceService.DeleteDevice(c.Request.Context(), deviceID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete device")
		return
	}

	logger.Info("Device deleted", slog.String("device_id", deviceID))
	c.Status(http.StatusNoContent)
}
