package handler

import (
	"github.com/gin-gonic/gin"

	"go-shop-api/internal/service"
	mdw "go-shop-api/internal/transport/http/middleware"
	resp "go-shop-api/internal/transport/http/response"
)

type CartHandler struct {
	svc *service.CartService
}

func NewCartHandler(svc *service.CartService) *CartHandler { return &CartHandler{svc: svc} }

// Mount 挂到已鉴权分组（能拿 userId）
func (h *CartHandler) Mount(g *gin.RouterGroup) {
	g.POST("/", h.add)
	g.GET("/", h.view)
	g.DELETE("/:product_id", h.remove)
	g.PATCH("/:product_id", h.updateQuantity)
}

type addToCartIn struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

func (h *CartHandler) add(c *gin.Context) {
	var in addToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Invalid(c, err)
		return
	}
	uid := c.GetString(mdw.KeyUserID)
	if err := h.svc.Add(c.Request.Context(), uid, in.ProductID, in.Quantity); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"detail": "Item added to cart"})
}

func (h *CartHandler) view(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	lines, err := h.svc.View(c.Request.Context(), uid)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, lines)
}

func (h *CartHandler) remove(c *gin.Context) {
	uid := c.GetString(mdw.KeyUserID)
	if err := h.svc.Remove(c.Request.Context(), uid, c.Param("product_id")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"detail": "Item removed from cart"})
}

type updateCartIn struct {
	Quantity int `json:"quantity" binding:"required"` // 增量，可为负
}

func (h *CartHandler) updateQuantity(c *gin.Context) {
	var in updateCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Invalid(c, err)
		return
	}
	uid := c.GetString(mdw.KeyUserID)
	if err := h.svc.UpdateQuantity(c.Request.Context(), uid, c.Param("product_id"), in.Quantity); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"detail": "Cart updated"})
}
