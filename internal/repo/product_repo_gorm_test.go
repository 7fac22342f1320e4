package repo

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-shop-api/internal/domain"
	"go-shop-api/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + utils.NewID() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// 条件扣减是防超卖的最后一道闸：库存不够时必须零行命中、分文不动
func TestDecrementStockGuard(t *testing.T) {
	db := newTestDB(t)
	r := NewProductRepo(db)
	p := &domain.Product{
		ID:       utils.NewID(),
		Name:     "Widget",
		Price:    decimal.RequireFromString("9.99"),
		Stock:    3,
		Category: "test",
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := r.DecrementStock(p.ID, 2); err != nil {
		t.Fatalf("decrement within stock: %v", err)
	}

	// 剩 1，再扣 2 要被谓词挡下
	err := r.DecrementStock(p.ID, 2)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}

	var got domain.Product
	if err := db.First(&got, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Stock != 1 {
		t.Errorf("stock = %d, want 1 (failed decrement must not touch it)", got.Stock)
	}

	// 恰好等于库存可以清零
	if err := r.DecrementStock(p.ID, 1); err != nil {
		t.Fatalf("decrement to zero: %v", err)
	}

	if err := r.DecrementStock(p.ID, 1); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("err = %v, want ErrInsufficientStock on empty stock", err)
	}

	if err := r.DecrementStock("missing", 1); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("err = %v, want ErrInsufficientStock for unknown id", err)
	}
}
