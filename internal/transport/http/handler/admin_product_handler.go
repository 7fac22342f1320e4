package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"go-shop-api/internal/service"
	resp "go-shop-api/internal/transport/http/response"
)

// AdminProductHandler 商品管理 CRUD，挂在 admin 角色分组下
type AdminProductHandler struct {
	svc *service.ProductService
}

func NewAdminProductHandler(svc *service.ProductService) *AdminProductHandler {
	return &AdminProductHandler{svc: svc}
}

func (h *AdminProductHandler) Mount(g *gin.RouterGroup) {
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.remove)
}

type productIn struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description" binding:"max=1024"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" binding:"gte=0"`
	Category    string          `json:"category" binding:"required,max=64"`
	ImageURL    string          `json:"image_url" binding:"omitempty,max=512"`
}

func (h *AdminProductHandler) create(c *gin.Context) {
	var in productIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Invalid(c, err)
		return
	}
	p, err := h.svc.Create(c.Request.Context(), service.ProductInput{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, p)
}

func (h *AdminProductHandler) list(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	items, err := h.svc.AdminList(c.Request.Context(), offset, limit)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, items)
}

func (h *AdminProductHandler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, p)
}

type productPatchIn struct {
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	Description *string          `json:"description" binding:"omitempty,max=1024"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category" binding:"omitempty,max=64"`
	ImageURL    *string          `json:"image_url" binding:"omitempty,max=512"`
}

func (h *AdminProductHandler) update(c *gin.Context) {
	var in productPatchIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Invalid(c, err)
		return
	}
	err := h.svc.Update(c.Request.Context(), c.Param("id"), service.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id")})
}

func (h *AdminProductHandler) remove(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id")})
}
