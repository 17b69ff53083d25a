package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace/models"
	"marketplace/services/schedule"
	"marketplace/utils"
)

// ScheduleHandler exposes availability management and the available
// slots view over HTTP.
type ScheduleHandler struct {
	svc    schedule.ScheduleService
	logger *zap.Logger
}

func NewScheduleHandler(svc schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, logger: logger}
}

// CreateAvailabilityHandler publishes a new slot for a provider.
func (h *ScheduleHandler) CreateAvailabilityHandler(c *gin.Context) {
	var req models.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	av, err := h.svc.CreateAvailability(c.Request.Context(), req)
	if err != nil {
		utils.DomainError(c, err)
		return
	}

	h.logger.Info("availability created",
		zap.String("availabilityId", av.ID),
		zap.String("providerId", av.ProviderID))
	c.JSON(http.StatusCreated, gin.H{"availability": av})
}

// DeleteAvailabilityHandler removes a published slot.
func (h *ScheduleHandler) DeleteAvailabilityHandler(c *gin.Context) {
	availabilityID := c.Query("availabilityId")
	if availabilityID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "availabilityId query parameter is required")
		return
	}

	if err := h.svc.DeleteAvailability(c.Request.Context(), availabilityID); err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability removed"})
}

// ProviderScheduleHandler returns the provider's still-bookable slots.
func (h *ScheduleHandler) ProviderScheduleHandler(c *gin.Context) {
	providerID := c.Query("providerId")
	if providerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "providerId query parameter is required")
		return
	}

	slots, err := h.svc.AvailableSlots(c.Request.Context(), providerID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableSchedule": slots})
}
