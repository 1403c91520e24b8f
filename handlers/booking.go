package handlers

import (
	"net/http"
	"time"

	"urbanhelp/middleware"
	"urbanhelp/models"
	"urbanhelp/services/booking"
	"urbanhelp/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Engine booking.Engine
}

func NewBookingHandler(engine booking.Engine) *BookingHandler {
	return &BookingHandler{Engine: engine}
}

// statusForWorkflowError maps workflow error kinds to HTTP statuses.
// Conflicts surface as 400 to match the public API contract.
func statusForWorkflowError(err error) int {
	switch booking.ErrKind(err) {
	case booking.KindValidation, booking.KindConflict:
		return http.StatusBadRequest
	case booking.KindNotFound:
		return http.StatusNotFound
	case booking.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

type createBookingInput struct {
	ServiceID  string            `json:"serviceId" binding:"required"`
	Duration   string            `json:"duration" binding:"required"`
	Charge     float64           `json:"charge"`
	Date       string            `json:"date" binding:"required"`
	Time       string            `json:"time" binding:"required"`
	ClientInfo models.ClientInfo `json:"clientInfo" binding:"required"`
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All fields are required.", err)
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD.", err)
		return
	}

	b, err := h.Engine.Create(c.Request.Context(), booking.CreateRequest{
		ServiceID:  input.ServiceID,
		Duration:   input.Duration,
		Charge:     input.Charge,
		Date:       date,
		Time:       input.Time,
		ClientInfo: input.ClientInfo,
	})
	if err != nil {
		utils.JSONError(c, statusForWorkflowError(err), "Failed to create booking.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully.",
		"booking": b,
	})
}

// GetAllBookings handles GET /api/bookings (admin).
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	views, err := h.Engine.ListAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, statusForWorkflowError(err), "Failed to fetch bookings.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(views),
		"bookings": views,
	})
}

type approveBookingInput struct {
	ApprovedWorkerID string `json:"approvedWorkerId"`
}

// ApproveBooking handles POST /api/bookings/:id/approve (admin).
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	var input approveBookingInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ApprovedWorkerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "A valid approvedWorkerId is required.", err)
		return
	}

	result, err := h.Engine.Approve(c.Request.Context(), c.Param("id"), input.ApprovedWorkerID)
	if err != nil {
		utils.JSONError(c, statusForWorkflowError(err), "Failed to approve booking.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "Booking approved successfully.",
		"booking":           result.Booking,
		"approvedBookingId": result.ApprovedBookingID,
	})
}

// CancelBooking handles PATCH /api/bookings/:id/cancel (authenticated user).
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	email := middleware.UserEmail(c)
	if email == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	b, err := h.Engine.Cancel(c.Request.Context(), c.Param("id"), email)
	if err != nil {
		utils.JSONError(c, statusForWorkflowError(err), "Failed to cancel booking.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled successfully.",
		"booking": b,
	})
}

// GetUserHistory handles GET /api/bookings/history/user.
func (h *BookingHandler) GetUserHistory(c *gin.Context) {
	email := middleware.UserEmail(c)
	if email == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	views, err := h.Engine.UserHistory(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, statusForWorkflowError(err), "Failed to fetch booking history.", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

type setPaymentInput struct {
	IsPaid *bool `json:"isPaid"`
}

// SetPayment handles PATCH /api/bookings/:id/payment (admin). The isPaid
// field must be a JSON boolean.
func (h *BookingHandler) SetPayment(c *gin.Context) {
	var input setPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil || input.IsPaid == nil {
		utils.JSONError(c, http.StatusBadRequest, "isPaid must be a boolean.", err)
		return
	}

	b, err := h.Engine.SetPaid(c.Request.Context(), c.Param("id"), *input.IsPaid)
	if err != nil {
		utils.JSONError(c, statusForWorkflowError(err), "Failed to update payment status.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment status updated.",
		"booking": b,
	})
}
