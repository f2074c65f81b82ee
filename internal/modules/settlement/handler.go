package settlement

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"aeronaa/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the admin-only settlement endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/settlements/overview", h.Overview)
	rg.GET("/settlements/months", h.MonthlyTotals)
	rg.GET("/settlements/vendors/:id", h.VendorSettlement)
}

// RegisterVendorRoutes mounts the vendor-facing settlement endpoints.
func (h *Handler) RegisterVendorRoutes(rg *gin.RouterGroup) {
	rg.GET("/settlements/my", h.MySettlements)
}

func (h *Handler) Overview(c *gin.Context) {
	report, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to aggregate bookings")
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) MonthlyTotals(c *gin.Context) {
	months, err := h.service.MonthlyTotals(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to aggregate bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"months": months})
}

func (h *Handler) VendorSettlement(c *gin.Context) {
	vendorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vendor ID")
		return
	}

	displayCurrency := c.Query("currency")
	month := c.Query("month")

	if month == "" {
		resp, err := h.service.VendorMonths(c.Request.Context(), vendorID, displayCurrency)
		if err != nil {
			h.settleError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp)
		return
	}

	resp, err := h.service.VendorMonth(c.Request.Context(), vendorID, month, displayCurrency)
	if err != nil {
		h.settleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) MySettlements(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if ownerID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	vendor, err := h.service.OwnerVendor(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No vendor registered for this account")
		return
	}

	resp, err := h.service.VendorMonths(c.Request.Context(), vendor.ID, c.Query("currency"))
	if err != nil {
		h.settleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) settleError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Month must be in YYYY-MM format")
	case ErrVendorNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vendor not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute settlement")
	}
}
