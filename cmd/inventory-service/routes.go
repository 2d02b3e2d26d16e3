package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/inventory-service/docs"
	"github.com/MikeMC777/inventory-service/internal/httpx"
	"github.com/MikeMC777/inventory-service/internal/order"
	"github.com/MikeMC777/inventory-service/internal/product"
)

func newRouter(products *product.Service, orders *order.Service) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), httpx.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	inv := r.Group("/api/inventory")
	inv.GET("/products", listProductsHandler(products))
	inv.POST("/search", searchProductsHandler(products))
	inv.POST("/update", updateStockHandler(products))

	ord := r.Group("/api/orders")
	ord.GET("", listOrdersHandler(orders))
	ord.POST("/create", createOrderHandler(orders))
	ord.GET("/:order_id", getOrderHandler(orders))
	ord.PUT("/:order_id/status", updateOrderStatusHandler(orders))
	return r
}
