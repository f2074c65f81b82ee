package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aeronaa/internal/domain"
	"aeronaa/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the authenticated user endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/my", h.MyBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
}

// RegisterAdminRoutes mounts the admin-only endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.POST("/bookings/ingest", h.IngestBookings)
	rg.PATCH("/bookings/:id/payment-status", h.UpdatePaymentStatus)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.UserID = c.GetInt64("user_id")

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
		case ErrDuplicateReference:
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Booking already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		return
	}
	if b.UserID != c.GetInt64("user_id") && c.GetString("role") != string(domain.RoleAdmin) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) MyBookings(c *gin.Context) {
	limit, offset := pageParams(c)
	bookings, total, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Bookings: bookings, Total: total, Limit: limit, Offset: offset})
}

func (h *Handler) ListBookings(c *gin.Context) {
	limit, offset := pageParams(c)
	bookings, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Bookings: bookings, Total: total, Limit: limit, Offset: offset})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), id, c.GetInt64("user_id"), c.GetString("role"), req.Reason)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot cancel this booking")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "ALREADY_CANCELLED", "Booking is already cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment status")
		return
	}

	b, err := h.service.UpdatePaymentStatus(c.Request.Context(), id, domain.PaymentStatus(req.Status))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Payment status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) IngestBookings(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ingest payload")
		return
	}

	stored, skipped, err := h.service.Ingest(c.Request.Context(), req.Bookings)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to ingest bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stored": stored, "skipped": skipped})
}

func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
