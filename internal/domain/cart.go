package domain

import "time"

// CartItem (user, product) 唯一，一行一个购买意向；结账后整批删除
type CartItem struct {
	ID        string `gorm:"primaryKey;size:32" json:"id"`
	UserID    string `gorm:"size:32;not null;uniqueIndex:uniq_cart_user_product" json:"user_id"`
	ProductID string `gorm:"size:32;not null;uniqueIndex:uniq_cart_user_product" json:"product_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (CartItem) TableName() string { return "cart_items" }
