package routes

import (
	"time"

	"homeserve/handlers"
	"homeserve/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers the router wires up.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Catalog *handlers.CatalogHandler
	Offers  *handlers.OffersHandler
}

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.ListServices)
		api.GET("/:serviceID", hb.Catalog.GetService)
	}
}

// RegisterOfferRoutes registers the promotional offer endpoints.
func RegisterOfferRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/offers")
	{
		api.GET("", hb.Offers.ListOffers)
		api.GET("/:code", hb.Offers.GetOffer)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		// Public: availability and pricing are browsable before sign-in.
		api.GET("/slots", hb.Booking.GetSlots)
		api.POST("/quote", hb.Booking.QuoteCart)
		api.POST("/session", hb.Booking.InitiateSession)
		api.PUT("/session/:sessionID", hb.Booking.UpdateSession)

		// Confirming consumes capacity and needs a verified phone.
		api.POST("/session/:sessionID/confirm", middleware.JWTAuth(), hb.Booking.ConfirmSession)
	}

	records := r.Group("/api/bookings")
	records.Use(middleware.JWTAuth())
	{
		records.GET("", hb.Booking.ListBookings)
		records.GET("/:bookingID", hb.Booking.GetBooking)
		records.PATCH("/:bookingID/cancel", hb.Booking.CancelBooking)
		records.PATCH("/:bookingID/complete", hb.Booking.CompleteBooking)
	}
}

// RegisterAuthRoutes registers phone verification endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/otp", handlers.RequestOTPHandler)
		api.POST("/verify", handlers.VerifyOTPHandler)
	}
}

// RegisterRoutes wires up CORS, health, and all API route groups.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterAuthRoutes(r)
	RegisterCatalogRoutes(r, hb)
	RegisterOfferRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
