package repo

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"go-shop-api/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) WithTx(tx *gorm.DB) *OrderRepo { return &OrderRepo{db: tx} }

func (r *OrderRepo) Create(o *domain.Order) error { return r.db.Create(o).Error }

func (r *OrderRepo) CreateItem(it *domain.OrderItem) error { return r.db.Create(it).Error }

func (r *OrderRepo) UpdateTotal(id string, total decimal.Decimal) error {
	return r.db.Model(&domain.Order{}).Where("id = ?", id).
		Update("total", total).Error
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

// FindByIDAndUser 归属校验进查询谓词，查不到和不属于一律当不存在
func (r *OrderRepo) FindByIDAndUser(id, userID string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.First(&o, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OrderRepo) ListItems(orderID string) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&out).Error
	return out, err
}
