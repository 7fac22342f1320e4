package repo

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"go-shop-api/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

// WithTx 事务内复用同一套查询
func (r *ProductRepo) WithTx(tx *gorm.DB) *ProductRepo { return &ProductRepo{db: tx} }

func (r *ProductRepo) Create(p *domain.Product) error { return r.db.Create(p).Error }

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

// FindByIDUnscoped 历史订单回显商品名，软删的也要能查到
func (r *ProductRepo) FindByIDUnscoped(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.Unscoped().First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

type ProductFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	OrderBy  string // 已由上层映射成白名单列名
	Offset   int
	Limit    int
}

func (r *ProductRepo) List(f ProductFilter) ([]domain.Product, error) {
	q := r.db.Model(&domain.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.OrderBy != "" {
		q = q.Order(f.OrderBy)
	}
	var out []domain.Product
	err := q.Offset(f.Offset).Limit(f.Limit).Find(&out).Error
	return out, err
}

func (r *ProductRepo) SearchByName(keyword string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.
		Where("LOWER(name) LIKE ?", "%"+keyword+"%").
		Find(&out).Error
	return out, err
}

func (r *ProductRepo) UpdateFields(id string, fields map[string]any) (int64, error) {
	res := r.db.Model(&domain.Product{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *ProductRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Product{})
	return res.RowsAffected, res.Error
}

// DecrementStock 条件扣减：stock 不够时零行命中，返回 ErrInsufficientStock。
// 并发结账靠这一步兜底，不靠应用层锁。
func (r *ProductRepo) DecrementStock(id string, qty int) error {
	res := r.db.Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
