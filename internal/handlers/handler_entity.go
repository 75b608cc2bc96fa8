package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/trt_portal/internal/core/ports/services"
	"github.com/SscSPs/trt_portal/internal/dto"
	"github.com/SscSPs/trt_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entityHandler handles HTTP requests for the organizational entity tree.
type entityHandler struct {
	entityService portssvc.EntitySvcFacade
}

func newEntityHandler(es portssvc.EntitySvcFacade) *entityHandler {
	return &entityHandler{entityService: es}
}

// registerEntityRoutes registers entity routes. Writes are admin only.
func registerEntityRoutes(rg *gin.RouterGroup, entityService portssvc.EntitySvcFacade) {
	h := newEntityHandler(entityService)
	adminOnly := middleware.RequireAdmin()

	entities := rg.Group("/entities")
	{
		entities.GET("", h.listEntities)
		entities.POST("", adminOnly, h.createEntity)
		entities.GET("/:id", h.getEntity)
		entities.GET("/:id/children", h.listChildren)
		entities.PATCH("/:id", adminOnly, h.updateEntity)
		entities.DELETE("/:id", adminOnly, h.deleteEntity)
	}
}

// createEntity godoc
// @Summary Create an entity
// @Description Creates an entity, optionally under a parent (admin only)
// @Tags entities
// @Accept json
// @Produce json
// @Param entity body dto.CreateEntityRequest true "Entity details"
// @Success 201 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code taken"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities [post]
func (h *entityHandler) createEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entity, err := h.entityService.CreateEntity(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create entity")
		return
	}

	logger.Info("Entity created", slog.Int64("entity_id", entity.EntityID))
	c.JSON(http.StatusCreated, dto.ToEntityResponse(entity))
}

// listEntities godoc
// @Summary List entities
// @Tags entities
// @Produce json
// @Success 200 {object} dto.ListEntitiesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities [get]
func (h *entityHandler) listEntities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entities, err := h.entityService.ListEntities(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entities")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntitiesResponse(entities))
}

// getEntity godoc
// @Summary Get an entity
// @Tags entities
// @Produce json
// @Param id path int true "Entity ID"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities/{id} [get]
func (h *entityHandler) getEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entity, err := h.entityService.GetEntity(c.Request.Context(), entityID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve entity")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// listChildren godoc
// @Summary List child entities
// @Description Lists the direct children of an entity
// @Tags entities
// @Produce json
// @Param id path int true "Parent entity ID"
// @Success 200 {object} dto.ListEntitiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities/{id}/children [get]
func (h *entityHandler) listChildren(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	parentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	children, err := h.entityService.ListChildren(c.Request.Context(), parentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list child entities")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntitiesResponse(children))
}

// updateEntity godoc
// @Summary Update an entity
// @Description Partially updates an entity. Re-parenting that would form a cycle is rejected (admin only)
// @Tags entities
// @Accept json
// @Produce json
// @Param id path int true "Entity ID"
// @Param entity body dto.UpdateEntityRequest true "Fields to update"
// @Success 200 {object} dto.EntityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities/{id} [patch]
func (h *entityHandler) updateEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	entity, err := h.entityService.UpdateEntity(c.Request.Context(), entityID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update entity")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntityResponse(entity))
}

// deleteEntity godoc
// @Summary Delete an entity
// @Description Deletes an entity without children (admin only)
// @Tags entities
// @Param id path int true "Entity ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Entity still has children or references"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entities/{id} [delete]
func (h *entityHandler) deleteEntity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.entityService.DeleteEntity(c.Request.Context(), entityID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete entity")
		return
	}

	logger.Info("Entity deleted", slog.Int64("entity_id", entityID))
	c.Status(http.StatusNoContent)
}
