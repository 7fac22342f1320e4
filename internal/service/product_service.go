package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/core/cache"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/repo"
	"go-shop-api/pkg/utils"
)

// 排序白名单：枚举键 → 列名，杜绝按任意字段名排序
var sortColumns = map[string]string{
	"id":    "id",
	"price": "price",
	"name":  "name",
}

type ProductService struct {
	products *repo.ProductRepo
	cache    cache.Store // 可为 nil（未启用）
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewProductService(db *gorm.DB, c cache.Store, cacheTTL time.Duration, log *zap.Logger) *ProductService {
	return &ProductService{
		products: repo.NewProductRepo(db),
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	ImageURL    string
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if in.Price.IsNegative() {
		return nil, apperr.BadRequest("Price must be non-negative")
	}
	if in.Stock < 0 {
		return nil, apperr.BadRequest("Stock must be non-negative")
	}
	p := &domain.Product{
		ID:          utils.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	}
	if err := s.products.Create(p); err != nil {
		return nil, apperr.Internal("db error", err)
	}
	return p, nil
}

type PublicListQuery struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	SortBy   string
	Page     int
	PageSize int
}

func (s *ProductService) List(ctx context.Context, q PublicListQuery) ([]domain.Product, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 10
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "id"
	}
	col, ok := sortColumns[sortBy]
	if !ok {
		return nil, apperr.BadRequest("Invalid sort key")
	}

	out, err := s.products.List(repo.ProductFilter{
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		OrderBy:  col,
		Offset:   (q.Page - 1) * q.PageSize,
		Limit:    q.PageSize,
	})
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	return out, nil
}

func (s *ProductService) AdminList(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	out, err := s.products.List(repo.ProductFilter{OrderBy: "id", Offset: offset, Limit: limit})
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	return out, nil
}

func (s *ProductService) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	out, err := s.products.SearchByName(strings.ToLower(keyword))
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	return out, nil
}

// Get 公共读走 redis 读穿缓存（singleflight 合并回源）；未配缓存直接查库
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	load := func(ctx context.Context) (*domain.Product, error) {
		return s.products.FindByID(id)
	}

	var p *domain.Product
	var err error
	if s.cache != nil {
		p, err = cache.GetOrLoadJSON[domain.Product](s.cache, ctx, productCacheKey(id), s.cacheTTL, load)
	} else {
		p, err = load(ctx)
	}
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if p == nil {
		return nil, apperr.NotFound("Product not found")
	}
	return p, nil
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Category    *string
	ImageURL    *string
}

// Update 局部更新，至少要给一个字段
func (s *ProductService) Update(ctx context.Context, id string, in ProductPatch) error {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return apperr.BadRequest("Price must be non-negative")
		}
		fields["price"] = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return apperr.BadRequest("Stock must be non-negative")
		}
		fields["stock"] = *in.Stock
	}
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}
	if len(fields) == 0 {
		return apperr.BadRequest("No fields to update")
	}

	n, err := s.products.UpdateFields(id, fields)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	if n == 0 {
		return apperr.NotFound("Product not found")
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	n, err := s.products.Delete(id)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	if n == 0 {
		return apperr.NotFound("Product not found")
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Del(ctx, productCacheKey(id))
	}
}

func productCacheKey(id string) string { return "product:" + id }
