package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cardshop/internal/models"
	"cardshop/internal/service"
)

// CreateOrder
// @Summary CreateOrder
// @Description Submits a buyer order: contact, last 4 chars of the payment reference, optional remark
// @ID create-order
// @Accept json
// @Produce json
// @Param input body models.OrderInput true "buyer input"
// @Success 201 {object} orderView
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var in models.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.svc.CreateOrder(in)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	ordersCreated.Inc()
	c.JSON(http.StatusCreated, toOrderView(order))
}

// GetOrderByNo
// @Summary GetOrderByNo
// @Description Looks an order up by its human-facing order number
// @ID get-order-by-no
// @Accept json
// @Produce json
// @Param no path string true "order number"
// @Success 200 {object} orderView
// @Failure 400,404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order/{no} [get]
func (h *Handler) GetOrderByNo(c *gin.Context) {
	no := strings.TrimSpace(c.Param("no"))
	if no == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order number")
		return
	}

	order, err := h.svc.FindByOrderNo(no)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "order not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, toOrderView(order))
}
