package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/service"
	"barakatfresh/internal/transport/http/middleware"
	"barakatfresh/internal/transport/http/response"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// POST /api/orders （需登录）
func (h *OrderHandler) Place(c *gin.Context) {
	var in service.PlaceOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest(err.Error()))
		return
	}
	uid := c.GetString(middleware.KeyUserID)
	o, err := h.orders.Place(uid, in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	middleware.CountOrderPlaced()
	// 最小回执，不回整单
	response.Message(c, http.StatusCreated, "Order placed successfully", gin.H{
		"order": service.OrderReceipt{
			ID:        o.ID,
			Total:     o.Total,
			Status:    o.Status,
			CreatedAt: o.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		},
	})
}

// GET /api/orders/my-orders （需登录）
func (h *OrderHandler) MyOrders(c *gin.Context) {
	uid := c.GetString(middleware.KeyUserID)
	orders, err := h.orders.ListByUser(uid)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/admin/all
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orders.ListAll()
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/admin/:id
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.orders.Get(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// PUT /api/orders/admin/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest(err.Error()))
		return
	}
	o, err := h.orders.UpdateStatus(c.Param("id"), in.Status)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Order status updated", gin.H{"order": o})
}

// DELETE /api/orders/admin/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orders.Delete(c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Order deleted successfully", nil)
}
