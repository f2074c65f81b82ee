package vendors

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aeronaa/internal/pkg/response"
	"aeronaa/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterVendorRoutes mounts vendor-role endpoints.
func (h *Handler) RegisterVendorRoutes(rg *gin.RouterGroup) {
	rg.POST("/vendors", h.Register)
}

// RegisterAdminRoutes mounts admin-only vendor management endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/vendors", h.List)
	rg.GET("/vendors/:id", h.Get)
	rg.POST("/vendors/:id/verify", h.Verify)
	rg.POST("/vendors/:id/reject", h.Reject)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid vendor data", fields)
		return
	}

	v, err := h.service.Register(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Vendor name is required")
		case ErrAlreadyExists:
			response.Error(c, http.StatusConflict, "VENDOR_EXISTS", "Vendor already registered for this account")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register vendor")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"vendor": v})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	vendors, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list vendors")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vendors": vendors, "total": total})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vendor ID")
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vendor not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vendor": v})
}

func (h *Handler) Verify(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vendor ID")
		return
	}

	v, err := h.service.Verify(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vendor not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify vendor")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vendor": v})
}

func (h *Handler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vendor ID")
		return
	}

	var req RejectVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason is required")
		return
	}

	v, err := h.service.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason is required")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vendor not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reject vendor")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"vendor": v})
}
