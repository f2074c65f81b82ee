package currency

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aeronaa/internal/pkg/response"
)

type Handler struct {
	provider *Provider
}

func NewHandler(provider *Provider) *Handler {
	return &Handler{provider: provider}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rates", h.GetRates)
}

func (h *Handler) GetRates(c *gin.Context) {
	target := strings.ToUpper(strings.TrimSpace(c.Query("currency")))
	if target == "" {
		target = BaseCurrency
	}

	rates := h.provider.Rates(c.Request.Context())

	response.Success(c, http.StatusOK, gin.H{
		"base":       BaseCurrency,
		"currency":   target,
		"multiplier": rates.Multiplier(target),
		"rates":      rates,
	})
}
