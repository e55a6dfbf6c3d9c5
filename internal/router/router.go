package router

import (
	"net/http"

	"laundry-service/internal/handlers"
	"laundry-service/internal/middleware"
	"laundry-service/internal/service"
	"laundry-service/internal/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Router собирает HTTP API. tp == nil - авторизация операторов выключена.
func Router(intake service.IntakeService, delivery service.DeliveryService, tp *token.HSProvider, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Prometheus())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	h := handlers.NewOrderHandler(intake, delivery, log)

	api := r.Group("/api/v1")
	if tp != nil {
		api.Use(middleware.OperatorAuth(tp, log))
	}
	api.GET("/product-types", h.ListProductTypes)

	orders := api.Group("/orders")
	orders.POST("", h.CreateOrder)
	orders.GET("/search", h.Search)
	orders.GET("/pending", h.ListPending)
	orders.GET("/:id", h.GetOrder)
	orders.GET("/:id/bill", h.Bill)
	orders.POST("/:id/items/:itemId/done", h.MarkItemDone)
	orders.PUT("/:id/items/:itemId/weight", h.CorrectItemWeight)
	orders.POST("/:id/deliver", h.ConfirmDelivery)

	return r
}
