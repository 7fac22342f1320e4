package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/repo"
	"go-shop-api/pkg/utils"
)

type OrderService struct {
	db       *gorm.DB
	orders   *repo.OrderRepo
	products *repo.ProductRepo
	log      *zap.Logger
}

func NewOrderService(db *gorm.DB, log *zap.Logger) *OrderService {
	return &OrderService{
		db:       db,
		orders:   repo.NewOrderRepo(db),
		products: repo.NewProductRepo(db),
		log:      log,
	}
}

// Checkout 整车转订单，单个事务内完成：
// 先整体校验库存，再逐行条件扣减 + 落快照价，最后清空购物车。
// 任何一步失败全量回滚，不留半截状态。
func (s *OrderService) Checkout(ctx context.Context, userID string) (string, error) {
	var orderID string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		carts := repo.NewCartRepo(tx)
		products := s.products.WithTx(tx)
		orders := s.orders.WithTx(tx)

		items, err := carts.ListByUser(userID)
		if err != nil {
			return apperr.Internal("db error", err)
		}
		if len(items) == 0 {
			return apperr.BadRequest("Cart is empty")
		}

		// 第一遍只校验，不动任何数据
		prods := make([]*domain.Product, len(items))
		for i, it := range items {
			p, err := products.FindByID(it.ProductID)
			if err != nil {
				return apperr.Internal("db error", err)
			}
			if p == nil {
				return apperr.NotFound("Product not found")
			}
			if it.Quantity > p.Stock {
				return apperr.BadRequest(fmt.Sprintf("Insufficient stock for '%s'", p.Name))
			}
			prods[i] = p
		}

		order := &domain.Order{
			ID:     utils.NewID(),
			UserID: userID,
			Total:  decimal.Zero,
			Status: domain.OrderStatusCompleted,
		}
		if err := orders.Create(order); err != nil {
			return apperr.Internal("db error", err)
		}

		total := decimal.Zero
		for i, it := range items {
			p := prods[i]
			// 条件扣减兜住并发：两个结账同抢一件货时输家在这里失败回滚
			if err := products.DecrementStock(p.ID, it.Quantity); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return apperr.BadRequest(fmt.Sprintf("Insufficient stock for '%s'", p.Name))
				}
				return apperr.Internal("db error", err)
			}
			subtotal := p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			if err := orders.CreateItem(&domain.OrderItem{
				ID:        utils.NewID(),
				OrderID:   order.ID,
				ProductID: p.ID,
				Quantity:  it.Quantity,
				Price:     p.Price, // 此刻的价格，落库即冻结
			}); err != nil {
				return apperr.Internal("db error", err)
			}
			total = total.Add(subtotal)
		}

		if err := orders.UpdateTotal(order.ID, total); err != nil {
			return apperr.Internal("db error", err)
		}
		if err := carts.DeleteByUser(userID); err != nil {
			return apperr.Internal("db error", err)
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info("order placed", zap.String("uid", userID), zap.String("order", orderID))
	return orderID, nil
}

type OrderSummary struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
}

type OrderLineView struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderDetail struct {
	OrderSummary
	Items []OrderLineView `json:"items"`
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]OrderSummary, error) {
	orders, err := s.orders.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderSummary{
			ID: o.ID, CreatedAt: o.CreatedAt, Total: o.Total, Status: o.Status,
		})
	}
	return out, nil
}

// Detail 归属在查询谓词里校验：别人的订单和不存在的订单同样报 404
func (s *OrderService) Detail(ctx context.Context, userID, orderID string) (*OrderDetail, error) {
	o, err := s.orders.FindByIDAndUser(orderID, userID)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if o == nil {
		return nil, apperr.NotFound("Order not found")
	}

	items, err := s.orders.ListItems(o.ID)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}

	views := make([]OrderLineView, 0, len(items))
	for _, it := range items {
		// 商品名实时解析（含已下架商品），小计用快照价算
		name := ""
		if p, err := s.products.FindByIDUnscoped(it.ProductID); err != nil {
			return nil, apperr.Internal("db error", err)
		} else if p != nil {
			name = p.Name
		}
		views = append(views, OrderLineView{
			ProductID:   it.ProductID,
			ProductName: name,
			Quantity:    it.Quantity,
			Subtotal:    it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}

	return &OrderDetail{
		OrderSummary: OrderSummary{ID: o.ID, CreatedAt: o.CreatedAt, Total: o.Total, Status: o.Status},
		Items:        views,
	}, nil
}
