package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInsufficientStock 条件扣减未命中（库存不足或被并发扣走）
var ErrInsufficientStock = errors.New("insufficient stock")

type Product struct {
	ID          string          `gorm:"primaryKey;size:32" json:"id"`
	Name        string          `gorm:"size:255;not null;index" json:"name"`
	Description string          `gorm:"size:1024" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	Category    string          `gorm:"size:64;index" json:"category"`
	ImageURL    string          `gorm:"size:512" json:"image_url"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }
