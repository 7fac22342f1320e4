package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusCompleted = "Completed"

type Order struct {
	ID     string          `gorm:"primaryKey;size:32" json:"id"`
	UserID string          `gorm:"size:32;not null;index" json:"user_id"`
	Total  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Status string          `gorm:"size:32;not null;default:Completed" json:"status"`

	CreatedAt time.Time `json:"created_at"`

	// Order 独占 OrderItem，删单级联删行
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderItem price 是下单时刻的快照，落库后不再改动
type OrderItem struct {
	ID        string          `gorm:"primaryKey;size:32" json:"id"`
	OrderID   string          `gorm:"size:32;not null;index" json:"order_id"`
	ProductID string          `gorm:"size:32;not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_items" }
