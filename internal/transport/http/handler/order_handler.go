package handler

import (
	"github.com/gin-gonic/gin"

	"go-shop-api/internal/service"
	mdw "go-shop-api/internal/transport/http/middleware"
	resp "go-shop-api/internal/transport/http/response"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler { return &OrderHandler{svc: svc} }

func (h *OrderHandler) Mount(g *gin.RouterGroup) {
	g.POST("/checkout", h.checkout)
	g.GET("/", h.list)
	g.GET("/:id", h.detail)
}

func (h *OrderHandler) checkout(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	orderID, err := h.svc.Checkout(c.Request.Context(), uid)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order placed successfully", "order_id": orderID})
}

func (h *OrderHandler) list(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	orders, err := h.svc.ListOrders(c.Request.Context(), uid)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, orders)
}

func (h *OrderHandler) detail(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	detail, err := h.svc.Detail(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, detail)
}
