package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/domain"
	"go-shop-api/pkg/utils"
)

// 每个用例一套独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + utils.NewID() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, stock int) *domain.Product {
	t.Helper()
	p := &domain.Product{
		ID:       utils.NewID(),
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		Category: "test",
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func stockOf(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var p domain.Product
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	return p.Stock
}

// wantErr 校验业务错误码和文案
func wantErr(t *testing.T, err error, code int, msgPart string) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error code %d, got nil", code)
	}
	var e *apperr.E
	if !errors.As(err, &e) {
		t.Fatalf("want *apperr.E, got %T: %v", err, err)
	}
	if e.Code != code {
		t.Errorf("code = %d, want %d (msg %q)", e.Code, code, e.Msg)
	}
	if msgPart != "" && !strings.Contains(e.Msg, msgPart) {
		t.Errorf("msg = %q, want it to contain %q", e.Msg, msgPart)
	}
}

func testLogger() *zap.Logger { return zap.NewNop() }
