package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"go-shop-api/internal/domain"
)

func newProductService(t *testing.T) *ProductService {
	return NewProductService(newTestDB(t), nil, time.Minute, testLogger())
}

func TestProductCreateRejectsNegatives(t *testing.T) {
	svc := newProductService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ProductInput{Name: "X", Price: decimal.RequireFromString("-1"), Stock: 1, Category: "c"})
	wantErr(t, err, 400, "Price must be non-negative")

	_, err = svc.Create(ctx, ProductInput{Name: "X", Price: decimal.Zero, Stock: -1, Category: "c"})
	wantErr(t, err, 400, "Stock must be non-negative")
}

func TestProductGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil, time.Minute, testLogger())
	p := seedProduct(t, db, "Widget", "5.00", 3)

	got, err := svc.Get(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Widget" {
		t.Errorf("name = %q, want Widget", got.Name)
	}

	_, err = svc.Get(context.Background(), "missing")
	wantErr(t, err, 404, "Product not found")
}

func TestProductListRejectsUnknownSortKey(t *testing.T) {
	svc := newProductService(t)
	_, err := svc.List(context.Background(), PublicListQuery{SortBy: "hashed_password"})
	wantErr(t, err, 400, "Invalid sort key")
}

func TestProductListFiltersAndSorts(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil, time.Minute, testLogger())
	ctx := context.Background()

	seedProduct(t, db, "Cheap", "2.00", 1)
	mid := seedProduct(t, db, "Mid", "10.00", 1)
	seedProduct(t, db, "Dear", "30.00", 1)

	minP := decimal.RequireFromString("5")
	maxP := decimal.RequireFromString("20")
	got, err := svc.List(ctx, PublicListQuery{MinPrice: &minP, MaxPrice: &maxP, SortBy: "price"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != mid.ID {
		t.Fatalf("got %+v, want only Mid", got)
	}

	all, err := svc.List(ctx, PublicListQuery{SortBy: "price"})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 || all[0].Name != "Cheap" || all[2].Name != "Dear" {
		t.Errorf("sorted = %v, want Cheap..Dear", names(all))
	}
}

func TestProductSearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil, time.Minute, testLogger())

	seedProduct(t, db, "Blue Phone", "1.00", 1)
	seedProduct(t, db, "Red Phone", "1.00", 1)
	seedProduct(t, db, "Laptop", "1.00", 1)

	got, err := svc.Search(context.Background(), "PHONE")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %v, want the two phones", names(got))
	}
}

func TestProductUpdateRequiresAtLeastOneField(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil, time.Minute, testLogger())
	p := seedProduct(t, db, "Widget", "5.00", 3)

	err := svc.Update(context.Background(), p.ID, ProductPatch{})
	wantErr(t, err, 400, "No fields to update")

	newPrice := decimal.RequireFromString("7.50")
	if err := svc.Update(context.Background(), p.ID, ProductPatch{Price: &newPrice}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := svc.Get(context.Background(), p.ID)
	if !got.Price.Equal(newPrice) {
		t.Errorf("price = %s, want 7.50", got.Price)
	}
	if got.Name != "Widget" || got.Stock != 3 {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}

func TestProductUpdateAndDeleteUnknown(t *testing.T) {
	svc := newProductService(t)
	name := "X"
	err := svc.Update(context.Background(), "missing", ProductPatch{Name: &name})
	wantErr(t, err, 404, "Product not found")
	err = svc.Delete(context.Background(), "missing")
	wantErr(t, err, 404, "Product not found")
}

func TestProductDeleteHidesFromCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil, time.Minute, testLogger())
	p := seedProduct(t, db, "Widget", "5.00", 3)

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err := svc.Get(context.Background(), p.ID)
	wantErr(t, err, 404, "Product not found")
}

// memStore 内存版 cache.Store，验证读穿和失效行为用
type memStore struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemStore() *memStore { return &memStore{m: map[string][]byte{}} }

func (s *memStore) GetOrLoad(ctx context.Context, key string, _ time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.m[key]; ok {
		return b, nil
	}
	b, err := load(ctx)
	if err != nil {
		return nil, err
	}
	s.m[key] = b
	return b, nil
}

func (s *memStore) Del(_ context.Context, keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.m, k)
	}
}

func TestProductCacheEvictedOnAdminWrite(t *testing.T) {
	db := newTestDB(t)
	store := newMemStore()
	svc := NewProductService(db, store, time.Minute, testLogger())
	ctx := context.Background()
	p := seedProduct(t, db, "Widget", "5.00", 3)

	// 第一次读灌缓存
	if _, err := svc.Get(ctx, p.ID); err != nil {
		t.Fatalf("get: %v", err)
	}

	// 绕过服务直接改库：缓存没失效，读到的还是旧名
	if err := db.Model(&domain.Product{}).Where("id = ?", p.ID).
		Update("name", "Renamed").Error; err != nil {
		t.Fatalf("raw update: %v", err)
	}
	got, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get cached: %v", err)
	}
	if got.Name != "Widget" {
		t.Fatalf("name = %q, want cached Widget", got.Name)
	}

	// 走管理端更新要把缓存打掉，下一次读回源
	name := "Gadget"
	if err := svc.Update(ctx, p.ID, ProductPatch{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Name != "Gadget" {
		t.Errorf("name = %q, want Gadget after invalidation", got.Name)
	}

	// 删除同样失效，缓存里残留的商品不能复活
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = svc.Get(ctx, p.ID)
	wantErr(t, err, 404, "Product not found")
}

func names(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}
