package handlers

import (
	"net/http"

	"logibook/internal/usecase"
	"logibook/pkg"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

func (h *AnalyticsHandler) GetDeliveryPerformance(c *gin.Context) {
	performance, err := h.usecase.DeliveryPerformance(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, performance)
}

func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	overview, err := h.usecase.Overview(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, overview)
}
