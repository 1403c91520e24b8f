package routes

import (
	"net/http"
	"time"

	"urbanhelp/handlers"
	"urbanhelp/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the routes wire up.
type HandlerBundle struct {
	Auth         *handlers.AuthHandler
	Booking      *handlers.BookingHandler
	Payment      *handlers.PaymentHandler
	Notification *handlers.NotificationHandler
	Catalog      *handlers.CatalogHandler
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking workflow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Public booking submission.
		api.POST("", hb.Booking.CreateBooking)

		// Authenticated user endpoints.
		authed := api.Group("")
		authed.Use(middleware.JWTAuthUserMiddleware())
		authed.PATCH("/:id/cancel", hb.Booking.CancelBooking)
		authed.GET("/history/user", hb.Booking.GetUserHistory)

		// Admin endpoints.
		admin := api.Group("")
		admin.Use(middleware.JWTAuthUserMiddleware(), middleware.JWTAuthAdminMiddleware())
		admin.GET("", hb.Booking.GetAllBookings)
		admin.POST("/:id/approve", hb.Booking.ApproveBooking)
		admin.PATCH("/:id/payment", hb.Booking.SetPayment)
	}
}

// RegisterPaymentRoutes sets up the gateway endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/verify", hb.Payment.VerifyPayment)
		api.GET("/khalti-payment-success", hb.Payment.KhaltiPaymentSuccess)
	}
}

// RegisterNotificationRoutes sets up the notifications API.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("", hb.Notification.ListNotifications)
		api.PUT("/:id/read", hb.Notification.MarkNotificationRead)
		api.PUT("/mark-all-read", hb.Notification.MarkAllNotificationsRead)
		api.DELETE("/:id", hb.Notification.DeleteNotification)
	}
}

// RegisterCatalogRoutes sets up the service catalog and worker directory.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/api/services", hb.Catalog.ListServices)

	admin := r.Group("/api/workers")
	admin.Use(middleware.JWTAuthUserMiddleware(), middleware.JWTAuthAdminMiddleware())
	admin.GET("", hb.Catalog.ListWorkers)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm UrbanHelp"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
