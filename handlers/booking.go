package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace/models"
	"marketplace/services/booking"
	"marketplace/utils"
)

// BookingHandler exposes the booking orchestrator over HTTP.
type BookingHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// CreateBookingHandler reserves a slot for a client.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	bk, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var ve *booking.ValidationError
		if errors.As(err, &ve) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", ve.Error())
			return
		}
		utils.DomainError(c, err)
		return
	}

	h.logger.Info("booking created",
		zap.String("bookingId", bk.ID),
		zap.String("availabilityId", bk.AvailabilityID))
	c.JSON(http.StatusCreated, gin.H{"booking": bk})
}

// CancelBookingHandler cancels a booking; repeating the call returns the
// same terminal state.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Query("bookingId")
	if bookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "bookingId query parameter is required")
		return
	}

	bk, err := h.svc.Cancel(c.Request.Context(), bookingID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// ProviderBookingsHandler lists the provider's confirmed bookings.
func (h *BookingHandler) ProviderBookingsHandler(c *gin.Context) {
	providerID := c.Query("providerId")
	if providerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "providerId query parameter is required")
		return
	}

	bookings, err := h.svc.ProviderBookings(c.Request.Context(), providerID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ProviderHistoryHandler lists every booking of the provider, cached.
func (h *BookingHandler) ProviderHistoryHandler(c *gin.Context) {
	providerID := c.Query("providerId")
	if providerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "providerId query parameter is required")
		return
	}

	bookings, err := h.svc.ProviderHistory(c.Request.Context(), providerID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"historyBookings": bookings})
}

// ClientBookingsHandler lists the client's bookings, cached.
func (h *BookingHandler) ClientBookingsHandler(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "clientId query parameter is required")
		return
	}

	bookings, err := h.svc.ClientBookings(c.Request.Context(), clientID)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientBookings": bookings})
}
