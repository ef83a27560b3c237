package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cardshop/internal/service"

	_ "cardshop/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	svc           service.Shop
	adminPassword string
	adminToken    string
}

func NewHandler(s service.Shop, adminPassword, adminToken string) *Handler {
	return &Handler{svc: s, adminPassword: adminPassword, adminToken: adminToken}
}

type listOrdersResponse struct {
	Data []orderView `json:"data"`
}

type listFilesResponse struct {
	Data []fileView `json:"data"`
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/orders", h.CreateOrder)
		api.GET("/order/:no", h.GetOrderByNo)
		api.POST("/admin/login", h.AdminLogin)

		admin := api.Group("/admin", h.adminAuth())
		{
			admin.GET("/stats", h.GetStats)
			admin.GET("/orders", h.ListOrders)
			admin.POST("/orders/:id/deliver", h.DeliverOrder)
			admin.GET("/files", h.ListFiles)
			admin.POST("/files", h.UploadFiles)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
