package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjrent/sjrent_backend/internal/apperrors"
	"github.com/sjrent/sjrent_backend/internal/core/domain"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
	"github.com/sjrent/sjrent_backend/internal/middleware"
)

// motorcycleHandler handles HTTP requests related to the fleet.
type motorcycleHandler struct {
	motorcycleService portssvc.MotorcycleSvcFacade
}

// newMotorcycleHandler creates a new motorcycleHandler.
func newMotorcycleHandler(ms portssvc.MotorcycleSvcFacade) *motorcycleHandler {
	return &motorcycleHandler{
		motorcycleService: ms,
	}
}

// registerMotorcycleRoutes registers routes related to the fleet.
func registerMotorcycleRoutes(rg *gin.RouterGroup, motorcycleService portssvc.MotorcycleSvcFacade) {
	h := newMotorcycleHandler(motorcycleService)

	motorcycles := rg.Group("/motorcycles")
	{
		motorcycles.POST("", h.createMotorcycle)
		motorcycles.GET("", h.listMotorcycles)
		motorcycles.GET("/:id", h.getMotorcycle)
		motorcycles.PUT("/:id", h.updateMotorcycle)
		motorcycles.PATCH("/:id/status", h.setMotorcycleStatus)
		motorcycles.DELETE("/:id", h.deleteMotorcycle)
	}
}

// createMotorcycle godoc
// @Summary Register a new motorcycle
// @Description Adds a motorcycle to the fleet with status AVAILABLE
// @Tags motorcycles
// @Accept  json
// @Produce  json
// @Param   motorcycle body dto.CreateMotorcycleRequest true "Motorcycle details"
// @Success 201 {object} dto.MotorcycleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Plate number already registered"
// @Failure 500 {object} map[string]string "Failed to create motorcycle"
// @Security BearerAuth
// @Router /motorcycles [post]
func (h *motorcycleHandler) createMotorcycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMotorcycle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create motorcycle", slog.String("plate_number", req.PlateNumber))

	newMotorcycle, err := h.motorcycleService.CreateMotorcycle(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating motorcycle", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate plate number", slog.String("plate_number", req.PlateNumber))
			c.JSON(http.StatusConflict, gin.H{"error": "Plate number already registered"})
		} else {
			logger.Error("Failed to create motorcycle in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create motorcycle"})
		}
		return
	}

	logger.Info("Motorcycle created successfully", slog.String("motorcycle_id", newMotorcycle.MotorcycleID))
	c.JSON(http.StatusCreated, dto.ToMotorcycleResponse(newMotorcycle))
}

// getMotorcycle godoc
// @Summary Get a motorcycle by ID
// @Description Retrieves details for a specific motorcycle by its ID
// @Tags motorcycles
// @Produce  json
// @Param   id path string true "Motorcycle ID"
// @Success 200 {object} dto.MotorcycleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Motorcycle not found"
// @Failure 500 {object} map[string]string "Failed to retrieve motorcycle"
// @Security BearerAuth
// @Router /motorcycles/{id} [get]
func (h *motorcycleHandler) getMotorcycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	motorcycleID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("motorcycle_id", motorcycleID))

	motorcycle, err := h.motorcycleService.GetMotorcycleByID(c.Request.Context(), motorcycleID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Motorcycle not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
		} else {
			logger.Error("Failed to get motorcycle from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve motorcycle"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMotorcycleResponse(motorcycle))
}

// listMotorcycles godoc
// @Summary List motorcycles
// @Description Retrieves a paginated list of motorcycles, optionally filtered by status
// @Tags motorcycles
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Param   status query string false "Filter by status (AVAILABLE, RENTED, MAINTENANCE, OUT_OF_SERVICE)"
// @Success 200 {object} dto.ListMotorcyclesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list motorcycles"
// @Security BearerAuth
// @Router /motorcycles [get]
func (h *motorcycleHandler) listMotorcycles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListMotorcyclesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListMotorcycles", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.motorcycleService.ListMotorcycles(c.Request.Context(), requestingUserID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing motorcycles", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list motorcycles from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list motorcycles"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateMotorcycle godoc
// @Summary Update a motorcycle
// @Description Updates a motorcycle's details (brand, model, rate, etc.)
// @Tags motorcycles
// @Accept  json
// @Produce  json
// @Param   id path string true "Motorcycle ID to update"
// @Param   motorcycle body dto.UpdateMotorcycleRequest true "Motorcycle details to update"
// @Success 200 {object} dto.MotorcycleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Motorcycle not found"
// @Failure 409 {object} map[string]string "Plate number already registered"
// @Failure 500 {object} map[string]string "Failed to update motorcycle"
// @Security BearerAuth
// @Router /motorcycles/{id} [put]
func (h *motorcycleHandler) updateMotorcycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	motorcycleID := c.Param("id")

	var req dto.UpdateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMotorcycle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("motorcycle_id", motorcycleID), slog.String("updater_user_id", requestingUserID))
	logger.Info("Received request to update motorcycle")

	updated, err := h.motorcycleService.UpdateMotorcycle(c.Request.Context(), motorcycleID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Motorcycle not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating motorcycle", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate plate number on update")
			c.JSON(http.StatusConflict, gin.H{"error": "Plate number already registered"})
		} else {
			logger.Error("Failed to update motorcycle in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update motorcycle"})
		}
		return
	}

	logger.Info("Motorcycle updated successfully")
	c.JSON(http.StatusOK, dto.ToMotorcycleResponse(updated))
}

// setMotorcycleStatus godoc
// @Summary Set motorcycle status
// @Description Transitions a motorcycle to the given operational status
// @Tags motorcycles
// @Accept  json
// @Produce  json
// @Param   id path string true "Motorcycle ID"
// @Param   status body dto.SetMotorcycleStatusRequest true "Target status"
// @Success 200 {object} dto.MotorcycleResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Motorcycle not found"
// @Failure 500 {object} map[string]string "Failed to set status"
// @Security BearerAuth
// @Router /motorcycles/{id}/status [patch]
func (h *motorcycleHandler) setMotorcycleStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	motorcycleID := c.Param("id")

	var req dto.SetMotorcycleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetMotorcycleStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("motorcycle_id", motorcycleID), slog.String("target_status", req.Status))
	logger.Info("Received request to set motorcycle status")

	updated, err := h.motorcycleService.SetMotorcycleStatus(c.Request.Context(), motorcycleID, domain.MotorcycleStatus(req.Status), requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Motorcycle not found for status change")
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting motorcycle status", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set motorcycle status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set motorcycle status"})
		}
		return
	}

	logger.Info("Motorcycle status updated successfully")
	c.JSON(http.StatusOK, dto.ToMotorcycleResponse(updated))
}

// deleteMotorcycle godoc
// @Summary Delete a motorcycle
// @Description Removes a motorcycle from the fleet; refused while it has open rentals
// @Tags motorcycles
// @Produce  json
// @Param   id path string true "Motorcycle ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Motorcycle not found"
// @Failure 409 {object} map[string]string "Motorcycle has open rentals"
// @Failure 500 {object} map[string]string "Failed to delete motorcycle"
// @Security BearerAuth
// @Router /motorcycles/{id} [delete]
func (h *motorcycleHandler) deleteMotorcycle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	motorcycleID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("motorcycle_id", motorcycleID), slog.String("deleter_user_id", requestingUserID))
	logger.Info("Received request to delete motorcycle")

	err := h.motorcycleService.DeleteMotorcycle(c.Request.Context(), motorcycleID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Motorcycle not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Motorcycle has open rentals, deletion refused")
			c.JSON(http.StatusConflict, gin.H{"error": "Motorcycle has open rentals and cannot be deleted"})
		} else {
			logger.Error("Failed to delete motorcycle in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete motorcycle"})
		}
		return
	}

	logger.Info("Motorcycle deleted successfully")
	c.Status(http.StatusNoContent)
}
