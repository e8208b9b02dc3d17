package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjrent/sjrent_backend/internal/apperrors"
	portssvc "github.com/sjrent/sjrent_backend/internal/core/ports/services"
	"github.com/sjrent/sjrent_backend/internal/dto"
	"github.com/sjrent/sjrent_backend/internal/middleware"
)

// rentalHandler handles HTTP requests related to rentals.
type rentalHandler struct {
	rentalService portssvc.RentalSvcFacade
}

// newRentalHandler creates a new rentalHandler.
func newRentalHandler(rs portssvc.RentalSvcFacade) *rentalHandler {
	return &rentalHandler{
		rentalService: rs,
	}
}

// RegisterRentalRoutes registers routes related to rentals.
func RegisterRentalRoutes(rg *gin.RouterGroup, rentalService portssvc.RentalSvcFacade) {
	h := newRentalHandler(rentalService)

	rentals := rg.Group("/rentals")
	{
		rentals.POST("", h.createRental)
		rentals.GET("", h.listRentals)
		rentals.GET("/:id", h.getRental)
		rentals.POST("/:id/complete", h.completeRental)
		rentals.POST("/:id/cancel", h.cancelRental)
		rentals.POST("/sweep-overdue", h.sweepOverdueRentals)
	}
}

// createRental godoc
// @Summary Open a new rental
// @Description Opens a rental on an AVAILABLE motorcycle, marks the motorcycle RENTED and records the deposit as income
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   rental body dto.CreateRentalRequest true "Rental details"
// @Success 201 {object} dto.RentalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Motorcycle or customer not found"
// @Failure 409 {object} map[string]string "Motorcycle is not available"
// @Failure 500 {object} map[string]string "Failed to create rental"
// @Security BearerAuth
// @Router /rentals [post]
func (h *rentalHandler) createRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRental", slog.String("error", err.Error()))
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
	logger.Info("Received request to create rental",
		slog.String("motorcycle_id", req.MotorcycleID),
		slog.String("customer_id", req.CustomerID))

	newRental, err := h.rentalService.CreateRental(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating rental", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Dependency not found creating rental", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Motorcycle not available for rental", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create rental in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rental"})
		}
		return
	}

	logger.Info("Rental created successfully", slog.String("rental_id", newRental.RentalID))
	c.JSON(http.StatusCreated, dto.ToRentalResponse(newRental))
}

// getRental godoc
// @Summary Get a rental by ID
// @Description Retrieves details for a specific rental, including motorcycle and customer summaries
// @Tags rentals
// @Produce  json
// @Param   id path string true "Rental ID"
// @Success 200 {object} dto.RentalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rental"
// @Security BearerAuth
// @Router /rentals/{id} [get]
func (h *rentalHandler) getRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("rental_id", rentalID))

	rental, err := h.rentalService.GetRentalByID(c.Request.Context(), rentalID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rental not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		} else {
			logger.Error("Failed to get rental from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rental"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}

// listRentals godoc
// @Summary List rentals
// @Description Retrieves a paginated list of rentals, optionally filtered by status
// @Tags rentals
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Pagination token from a previous response"
// @Param   status query string false "Filter by status (ACTIVE, COMPLETED, CANCELLED, OVERDUE)"
// @Success 200 {object} dto.ListRentalsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list rentals"
// @Security BearerAuth
// @Router /rentals [get]
func (h *rentalHandler) listRentals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListRentalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListRentals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.rentalService.ListRentals(c.Request.Context(), requestingUserID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing rentals", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list rentals from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rentals"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// completeRental godoc
// @Summary Complete a rental
// @Description Closes an open rental with the agreed total amount, frees the motorcycle and records the remaining payment
// @Tags rentals
// @Accept  json
// @Produce  json
// @Param   id path string true "Rental ID"
// @Param   completion body dto.CompleteRentalRequest true "Agreed total amount"
// @Success 200 {object} dto.RentalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 409 {object} map[string]string "Rental already completed or cancelled"
// @Failure 500 {object} map[string]string "Failed to complete rental"
// @Security BearerAuth
// @Router /rentals/{id}/complete [post]
func (h *rentalHandler) completeRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("id")

	var req dto.CompleteRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CompleteRental", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("rental_id", rentalID), slog.String("updater_user_id", requestingUserID))
	logger.Info("Received request to complete rental")

	rental, err := h.rentalService.CompleteRental(c.Request.Context(), rentalID, req, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rental not found for completion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error completing rental", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Rental not open for completion", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to complete rental in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete rental"})
		}
		return
	}

	logger.Info("Rental completed successfully")
	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}

// cancelRental godoc
// @Summary Cancel a rental
// @Description Cancels an open rental and frees the motorcycle; any recorded deposit income stays in the journal
// @Tags rentals
// @Produce  json
// @Param   id path string true "Rental ID"
// @Success 200 {object} dto.RentalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Rental not found"
// @Failure 409 {object} map[string]string "Rental already completed or cancelled"
// @Failure 500 {object} map[string]string "Failed to cancel rental"
// @Security BearerAuth
// @Router /rentals/{id}/cancel [post]
func (h *rentalHandler) cancelRental(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rentalID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("rental_id", rentalID), slog.String("updater_user_id", requestingUserID))
	logger.Info("Received request to cancel rental")

	rental, err := h.rentalService.CancelRental(c.Request.Context(), rentalID, requestingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rental not found for cancellation")
			c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Rental not open for cancellation", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to cancel rental in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel rental"})
		}
		return
	}

	logger.Info("Rental cancelled successfully")
	c.JSON(http.StatusOK, dto.ToRentalResponse(rental))
}

// sweepOverdueRentals godoc
// @Summary Sweep overdue rentals
// @Description Marks every ACTIVE rental past its planned end date as OVERDUE and returns the resulting overdue set
// @Tags rentals
// @Produce  json
// @Success 200 {object} dto.SweepOverdueResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to sweep overdue rentals"
// @Security BearerAuth
// @Router /rentals/sweep-overdue [post]
func (h *rentalHandler) sweepOverdueRentals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Requesting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("sweeper_user_id", requestingUserID))
	logger.Info("Received request to sweep overdue rentals")

	overdue, marked, err := h.rentalService.SweepOverdueRentals(c.Request.Context(), requestingUserID)
	if err != nil {
		logger.Error("Failed to sweep overdue rentals in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sweep overdue rentals"})
		return
	}

	logger.Info("Overdue sweep finished", slog.Int64("marked_overdue", marked))
	c.JSON(http.StatusOK, dto.ToSweepOverdueResponse(overdue, marked))
}
