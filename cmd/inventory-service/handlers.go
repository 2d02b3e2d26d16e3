package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/inventory-service/internal/apperr"
	"github.com/MikeMC777/inventory-service/internal/httpx"
	"github.com/MikeMC777/inventory-service/internal/order"
	"github.com/MikeMC777/inventory-service/internal/product"
)

// listProductsHandler godoc
// @Summary  List products
// @Tags     inventory
// @Produce  json
// @Success  200 {array}  product.Product
// @Failure  500 {object} httpx.HTTPError
// @Router   /api/inventory/products [get]
func listProductsHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// searchProductsHandler godoc
// @Summary  Search products by name keyword, category and subcategory
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    body body     product.SearchRequest true "search filters"
// @Success  200  {array}  product.Product
// @Failure  400  {object} httpx.HTTPError
// @Router   /api/inventory/search [post]
func searchProductsHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpx.HTTPError{Error: "invalid json"})
			return
		}
		items, err := svc.Search(c.Request.Context(), product.SearchQuery{
			Keyword:     req.Keyword,
			Category:    req.Category,
			Subcategory: req.Subcategory,
		})
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// updateStockHandler godoc
// @Summary  Overwrite the stock of a product
// @Tags     inventory
// @Accept   json
// @Produce  json
// @Param    body body     product.UpdateStockRequest true "product id and new stock"
// @Success  200  {object} product.UpdateStockResponse
// @Failure  400  {object} httpx.HTTPError
// @Failure  404  {object} httpx.HTTPError
// @Router   /api/inventory/update [post]
func updateStockHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.UpdateStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpx.HTTPError{Error: "invalid json"})
			return
		}
		p, err := svc.UpdateStock(c.Request.Context(), req.ProductID, req.Stock)
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product.UpdateStockResponse{
			Message: "Stock updated successfully",
			Product: *p,
		})
	}
}

// listOrdersHandler godoc
// @Summary  List orders with their product
// @Tags     orders
// @Produce  json
// @Success  200 {array}  order.Order
// @Failure  500 {object} httpx.HTTPError
// @Router   /api/orders [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// createOrderHandler godoc
// @Summary  Create an order and decrement inventory
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body     order.CreateOrderRequest true "product id and quantity"
// @Success  200  {object} order.OrderResponse
// @Failure  400  {object} httpx.StockError
// @Failure  404  {object} httpx.HTTPError
// @Router   /api/orders/create [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpx.HTTPError{Error: "invalid json"})
			return
		}
		o, err := svc.Create(c.Request.Context(), req.ProductID, req.Quantity)
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.OrderResponse{Message: "Order created successfully", Order: *o})
	}
}

// getOrderHandler godoc
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    order_id path     int true "order id"
// @Success  200      {object} order.Order
// @Failure  404      {object} httpx.HTTPError
// @Router   /api/orders/{order_id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		o, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderStatusHandler godoc
// @Summary  Set the status of an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id path     int                       true "order id"
// @Param    body     body     order.UpdateStatusRequest true "new status"
// @Success  200      {object} order.OrderResponse
// @Failure  400      {object} httpx.HTTPError
// @Failure  404      {object} httpx.HTTPError
// @Router   /api/orders/{order_id}/status [put]
func updateOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderID(c)
		if !ok {
			return
		}
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpx.HTTPError{Error: "invalid json"})
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			httpx.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order.OrderResponse{Message: "Order status updated", Order: *o})
	}
}

// orderID parses :order_id. Non-integer ids never match an order, so they are a 404.
func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("order_id"), 10, 64)
	if err != nil {
		httpx.RespondError(c, apperr.NotFound("Order"))
		return 0, false
	}
	return id, true
}
