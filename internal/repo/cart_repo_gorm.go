package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-shop-api/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) WithTx(tx *gorm.DB) *CartRepo { return &CartRepo{db: tx} }

func (r *CartRepo) FindLine(userID, productID string) (*domain.CartItem, error) {
	var ci domain.CartItem
	err := r.db.First(&ci, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ci, err
}

func (r *CartRepo) ListByUser(userID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&out).Error
	return out, err
}

func (r *CartRepo) Create(ci *domain.CartItem) error { return r.db.Create(ci).Error }

func (r *CartRepo) UpdateQuantity(id string, qty int) error {
	return r.db.Model(&domain.CartItem{}).Where("id = ?", id).
		Update("quantity", qty).Error
}

func (r *CartRepo) DeleteLine(userID, productID string) (int64, error) {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.CartItem{})
	return res.RowsAffected, res.Error
}

// DeleteByUser 结账成功后整车清空
func (r *CartRepo) DeleteByUser(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error
}
