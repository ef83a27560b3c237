package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cardshop/internal/service"
)

const adminTokenHeader = "X-Admin-Token"

// adminAuth gates privileged endpoints behind the server-held token issued
// by AdminLogin.
func (h *Handler) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.adminToken == "" || c.GetHeader(adminTokenHeader) != h.adminToken {
			newErrorResponse(c, http.StatusUnauthorized, "invalid admin token")
			return
		}
		c.Next()
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// AdminLogin
// @Summary AdminLogin
// @Description Exchanges the admin password for the token privileged endpoints expect in X-Admin-Token
// @ID admin-login
// @Accept json
// @Produce json
// @Param input body loginRequest true "admin password"
// @Success 200 {object} loginResponse
// @Failure 400,401 {object} errorResponse
// @Router /api/admin/login [post]
func (h *Handler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password == "" || req.Password != h.adminPassword {
		newErrorResponse(c, http.StatusUnauthorized, "wrong password")
		return
	}
	c.JSON(http.StatusOK, loginResponse{Token: h.adminToken})
}

// GetStats
// @Summary GetStats
// @Description Order counts, remaining stock and revenue for the admin dashboard
// @ID get-stats
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 401,500 {object} errorResponse
// @Router /api/admin/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	st, err := h.svc.Stats()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, st)
}

// ListOrders
// @Summary ListOrders
// @Description Lists orders newest first, optionally filtered by status
// @ID list-orders
// @Produce json
// @Param status query string false "pending, delivered or all"
// @Success 200 {object} listOrdersResponse
// @Failure 400,401,500 {object} errorResponse
// @Router /api/admin/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	status := c.DefaultQuery("status", "all")
	switch status {
	case "all", "pending", "delivered":
	default:
		newErrorResponse(c, http.StatusBadRequest, "unknown status filter")
		return
	}

	orders, err := h.svc.ListOrders(status)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, listOrdersResponse{Data: toOrderViews(orders)})
}

// DeliverOrder
// @Summary DeliverOrder
// @Description Binds one unsold file to the order and marks it delivered
// @ID deliver-order
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} orderView
// @Failure 401,404 {object} errorResponse
// @Failure 409 {object} errorResponse "out_of_stock or already_delivered"
// @Failure 500 {object} errorResponse
// @Router /api/admin/orders/{id}/deliver [post]
func (h *Handler) DeliverOrder(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	order, err := h.svc.Deliver(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			newErrorResponse(c, http.StatusNotFound, "order not found")
		case errors.Is(err, service.ErrOutOfStock):
			deliveriesOutOfStock.Inc()
			newCodedErrorResponse(c, http.StatusConflict, "out_of_stock", "stock empty, cannot ship")
		case errors.Is(err, service.ErrAlreadyDelivered):
			newCodedErrorResponse(c, http.StatusConflict, "already_delivered", "order already delivered")
		default:
			newErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	ordersDelivered.Inc()
	c.JSON(http.StatusOK, toOrderView(order))
}

type uploadFilesRequest struct {
	Content string `json:"content"`
}

type uploadFilesResponse struct {
	Added int        `json:"added"`
	Files []fileView `json:"files"`
}

// UploadFiles
// @Summary UploadFiles
// @Description Bulk-adds inventory, one file per non-blank line of content
// @ID upload-files
// @Accept json
// @Produce json
// @Param input body uploadFilesRequest true "newline-separated file contents"
// @Success 201 {object} uploadFilesResponse
// @Failure 400,401,500 {object} errorResponse
// @Router /api/admin/files [post]
func (h *Handler) UploadFiles(c *gin.Context) {
	var req uploadFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		newErrorResponse(c, http.StatusBadRequest, "content is empty")
		return
	}

	files, err := h.svc.BulkAdd(strings.Split(req.Content, "\n"))
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, uploadFilesResponse{Added: len(files), Files: toFileViews(files)})
}

// ListFiles
// @Summary ListFiles
// @Description Lists all inventory files, sold and unsold
// @ID list-files
// @Produce json
// @Success 200 {object} listFilesResponse
// @Failure 401,500 {object} errorResponse
// @Router /api/admin/files [get]
func (h *Handler) ListFiles(c *gin.Context) {
	files, err := h.svc.ListFiles()
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, listFilesResponse{Data: toFileViews(files)})
}
