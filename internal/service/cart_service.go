package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/repo"
	"go-shop-api/pkg/utils"
)

type CartService struct {
	db       *gorm.DB
	carts    *repo.CartRepo
	products *repo.ProductRepo
	log      *zap.Logger
}

func NewCartService(db *gorm.DB, log *zap.Logger) *CartService {
	return &CartService{
		db:       db,
		carts:    repo.NewCartRepo(db),
		products: repo.NewProductRepo(db),
		log:      log,
	}
}

// CartLine 购物车视图行：带商品名/单价和小计
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Add 数量叠加到现有行，预期总量不能超库存；
// 报错里给的是"还能再加多少"（库存 - 已在车里的量）
func (s *CartService) Add(ctx context.Context, userID, productID string, qty int) error {
	p, err := s.products.FindByID(productID)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	if p == nil {
		return apperr.NotFound("Product not found")
	}

	existing, err := s.carts.FindLine(userID, productID)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	existingQty := 0
	if existing != nil {
		existingQty = existing.Quantity
	}

	newQty := existingQty + qty
	if newQty > p.Stock {
		return apperr.BadRequest(fmt.Sprintf("Only %d items left in stock.", p.Stock-existingQty))
	}

	if existing != nil {
		if err := s.carts.UpdateQuantity(existing.ID, newQty); err != nil {
			return apperr.Internal("db error", err)
		}
		return nil
	}
	line := &domain.CartItem{
		ID:        utils.NewID(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}
	if err := s.carts.Create(line); err != nil {
		return apperr.Internal("db error", err)
	}
	return nil
}

func (s *CartService) View(ctx context.Context, userID string) ([]CartLine, error) {
	items, err := s.carts.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		p, err := s.products.FindByIDUnscoped(it.ProductID)
		if err != nil {
			return nil, apperr.Internal("db error", err)
		}
		if p == nil {
			continue
		}
		lines = append(lines, CartLine{
			ProductID: it.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
			Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	return lines, nil
}

func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	n, err := s.carts.DeleteLine(userID, productID)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	if n == 0 {
		return apperr.NotFound("Cart item not found")
	}
	return nil
}

// UpdateQuantity 增量调整；注意和 Add 不同，超库存时报的是总库存数
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, delta int) error {
	p, err := s.products.FindByID(productID)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	if p == nil {
		return apperr.NotFound("Product not found")
	}

	existing, err := s.carts.FindLine(userID, productID)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	existingQty := 0
	if existing != nil {
		existingQty = existing.Quantity
	}

	newQty := existingQty + delta
	switch {
	case newQty < 0:
		return apperr.BadRequest("Quantity must be positive")
	case newQty == 0:
		if existing != nil {
			if _, err := s.carts.DeleteLine(userID, productID); err != nil {
				return apperr.Internal("db error", err)
			}
		}
		return nil
	case newQty > p.Stock:
		return apperr.BadRequest(fmt.Sprintf("Only %d items left in stock.", p.Stock))
	}

	if existing != nil {
		if err := s.carts.UpdateQuantity(existing.ID, newQty); err != nil {
			return apperr.Internal("db error", err)
		}
		return nil
	}
	line := &domain.CartItem{
		ID:        utils.NewID(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  newQty,
	}
	if err := s.carts.Create(line); err != nil {
		return apperr.Internal("db error", err)
	}
	return nil
}
