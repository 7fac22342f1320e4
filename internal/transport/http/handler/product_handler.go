package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"go-shop-api/internal/service"
	resp "go-shop-api/internal/transport/http/response"
)

// ProductHandler 公共目录读，无需登录
type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Mount(g *gin.RouterGroup) {
	g.GET("", h.list)
	g.GET("/search", h.search)
	g.GET("/:id", h.detail)
}

type publicListQ struct {
	Category string   `form:"category"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	SortBy   string   `form:"sort_by,default=id"`
	Page     int      `form:"page,default=1"`
	PageSize int      `form:"page_size,default=10"`
}

func (h *ProductHandler) list(c *gin.Context) {
	var q publicListQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Invalid(c, err)
		return
	}
	query := service.PublicListQuery{
		Category: q.Category,
		SortBy:   q.SortBy,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	if q.MinPrice != nil {
		d := decimal.NewFromFloat(*q.MinPrice)
		query.MinPrice = &d
	}
	if q.MaxPrice != nil {
		d := decimal.NewFromFloat(*q.MaxPrice)
		query.MaxPrice = &d
	}
	items, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, items)
}

type searchQ struct {
	Keyword string `form:"keyword" binding:"required"`
}

func (h *ProductHandler) search(c *gin.Context) {
	var q searchQ
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.Invalid(c, err)
		return
	}
	items, err := h.svc.Search(c.Request.Context(), q.Keyword)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, items)
}

func (h *ProductHandler) detail(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, p)
}
