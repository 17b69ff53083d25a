package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marketplace/handlers"
)

// RegisterRoutes wires all HTTP endpoints.
func RegisterRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler, scheduleHandler *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/health", handlers.HealthHandler)

	schedule := r.Group("/api/schedule")
	{
		schedule.POST("/create", scheduleHandler.CreateAvailabilityHandler)
		schedule.DELETE("/delete", scheduleHandler.DeleteAvailabilityHandler)
		schedule.GET("/list/provider", scheduleHandler.ProviderScheduleHandler)
	}

	booking := r.Group("/api/booking")
	{
		booking.POST("/create", bookingHandler.CreateBookingHandler)
		booking.PATCH("/cancel", bookingHandler.CancelBookingHandler)
		booking.GET("/list/provider", bookingHandler.ProviderBookingsHandler)
		booking.GET("/list/client", bookingHandler.ClientBookingsHandler)
		booking.GET("/history/provider", bookingHandler.ProviderHistoryHandler)
	}
}
