package service

import (
	"context"
	"testing"

	"go-shop-api/internal/domain"
)

func TestCartAddWithinStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, testLogger())
	p := seedProduct(t, db, "Widget", "9.99", 5)

	if err := svc.Add(context.Background(), "u1", p.ID, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	lines, err := svc.View(context.Background(), "u1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 3 {
		t.Fatalf("lines = %+v, want one line qty=3", lines)
	}
	if lines[0].Subtotal.String() != "29.97" {
		t.Errorf("subtotal = %s, want 29.97", lines[0].Subtotal)
	}
}

func TestCartAddAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, testLogger())
	p := seedProduct(t, db, "Widget", "2.00", 5)

	if err := svc.Add(context.Background(), "u1", p.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(context.Background(), "u1", p.ID, 2); err != nil {
		t.Fatalf("second add: %v", err)
	}
	lines, _ := svc.View(context.Background(), "u1")
	if len(lines) != 1 || lines[0].Quantity != 4 {
		t.Fatalf("lines = %+v, want one line qty=4", lines)
	}
}

func TestCartAddExceedingStockReportsRemaining(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, testLogger())
	p := seedProduct(t, db, "Widget", "1.00", 5)

	// 空车直接要 10 件 → 剩 5
	err := svc.Add(context.Background(), "u1", p.ID, 10)
	wantErr(t, err, 400, "Only 5 items left in stock.")

	// 车里已有 2 件再要 4 件 → 剩 3
	if err := svc.Add(context.Background(), "u1", p.ID, 2); err != nil {
		t.Fatalf("add 2: %v", err)
	}
	err = svc.Add(context.Background(), "u1", p.ID, 4)
	wantErr(t, err, 400, "Only 3 items left in stock.")

	// 失败不动现有行
	lines, _ := svc.View(context.Background(), "u1")
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("lines = %+v, want qty unchanged at 2", lines)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, testLogger())
	err := svc.Add(context.Background(), "u1", "missing", 1)
	wantErr(t, err, 404, "Product not found")
}

func TestCartViewEmptyIsNotError(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, testLogger())
	lines, err := svc.View(context.Background(), "u1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("lines = %+v, want empty", lines)
	}
}

func TestCartRemove(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, testLogger())
	p := seedProduct(t, db, "Widget", "1.00", 5)

	err := svc.Remove(context.Background(), "u1", p.ID)
	wantErr(t, err, 404, "Cart item not found")

	if err := svc.Add(context.Background(), "u1", p.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Remove(context.Background(), "u1", p.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	lines, _ := svc.View(context.Background(), "u1")
	if len(lines) != 0 {
		t.Errorf("lines = %+v, want empty after remove", lines)
	}
}

func TestCartUpdateQuantityReportsTotalStock(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, testLogger())
	p := seedProduct(t, db, "Widget", "1.00", 4)

	if err := svc.Add(context.Background(), "u1", p.ID, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	// 3+2=5 > 4：报的是总库存 4，不是剩余 1
	err := svc.UpdateQuantity(context.Background(), "u1", p.ID, 2)
	wantErr(t, err, 400, "Only 4 items left in stock.")

	lines, _ := svc.View(context.Background(), "u1")
	if lines[0].Quantity != 3 {
		t.Errorf("qty = %d, want 3 (unchanged on failure)", lines[0].Quantity)
	}
}

func TestCartUpdateQuantityCreatesAndDeletes(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, testLogger())
	p := seedProduct(t, db, "Widget", "1.00", 10)
	ctx := context.Background()

	// 没有现有行：按增量新建
	if err := svc.UpdateQuantity(ctx, "u1", p.ID, 2); err != nil {
		t.Fatalf("update: %v", err)
	}
	lines, _ := svc.View(ctx, "u1")
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("lines = %+v, want one line qty=2", lines)
	}

	// 减到 0：行删除
	if err := svc.UpdateQuantity(ctx, "u1", p.ID, -2); err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	lines, _ = svc.View(ctx, "u1")
	if len(lines) != 0 {
		t.Fatalf("lines = %+v, want empty", lines)
	}

	// 减出负数：拒绝
	err := svc.UpdateQuantity(ctx, "u1", p.ID, -1)
	wantErr(t, err, 400, "Quantity must be positive")

	var cnt int64
	db.Model(&domain.CartItem{}).Count(&cnt)
	if cnt != 0 {
		t.Errorf("cart rows = %d, want 0", cnt)
	}
}

func TestCartUpdateQuantityUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db, testLogger())
	err := svc.UpdateQuantity(context.Background(), "u1", "missing", 1)
	wantErr(t, err, 404, "Product not found")
}
