package repository

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/config"
	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/sales"
	"github.com/storekeep/inventory-service/internal/store"
)

type fixture struct {
	store      *store.Store
	repo       *SQLiteRepository
	itemID     int64
	supplierID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sales_test.db")

	s, err := store.Open(config.SQLite{Path: dbPath, BusyTimeout: 5000}, zap.NewNop())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	res, err := s.ExecContext(ctx,
		`INSERT INTO products (name, sku, description) VALUES ('Widget', 'WDG-1', '')`)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	itemID, _ := res.LastInsertId()

	res, err = s.ExecContext(ctx, `INSERT INTO suppliers (name, code) VALUES ('Acme', 'ACM')`)
	if err != nil {
		t.Fatalf("insert supplier: %v", err)
	}
	supplierID, _ := res.LastInsertId()

	return &fixture{store: s, repo: NewSQLiteRepository(s), itemID: itemID, supplierID: supplierID}
}

func (f *fixture) quantity(t *testing.T) int64 {
	t.Helper()
	var qty int64
	if err := f.store.GetContext(context.Background(), &qty, `
		SELECT available_quantity FROM product_supplier_inventory
		WHERE item_id = ? AND supplier_id = ?
	`, f.itemID, f.supplierID); err != nil {
		t.Fatalf("get quantity: %v", err)
	}
	return qty
}

func TestUpsertOverwritesExisting(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, price := range []float64{2.5, 3.75} {
		if err := f.repo.UpsertInfo(ctx, &model.ProductSupplierInfo{
			ItemID: f.itemID, SupplierID: f.supplierID, UnitPrice: price,
		}); err != nil {
			t.Fatalf("upsert info: %v", err)
		}
	}

	var price float64
	if err := f.store.GetContext(ctx, &price, `
		SELECT unit_price FROM product_supplier_info
		WHERE item_id = ? AND supplier_id = ?
	`, f.itemID, f.supplierID); err != nil {
		t.Fatalf("get price: %v", err)
	}
	if price != 3.75 {
		t.Fatalf("expected latest price 3.75, got %v", price)
	}

	var count int
	if err := f.store.GetContext(ctx, &count,
		`SELECT count(*) FROM product_supplier_info`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one info row, got %d", count)
	}
}

func TestSellDecrementsStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if err := f.repo.UpsertInventory(ctx, &model.ProductSupplierInventory{
		ItemID: f.itemID, SupplierID: f.supplierID, AvailableQuantity: 10,
	}); err != nil {
		t.Fatalf("upsert inventory: %v", err)
	}

	if err := f.repo.Sell(ctx, f.itemID, f.supplierID, 4); err != nil {
		t.Fatalf("sell: %v", err)
	}
	if qty := f.quantity(t); qty != 6 {
		t.Fatalf("expected quantity 6, got %d", qty)
	}

	// Selling to exactly zero is allowed.
	if err := f.repo.Sell(ctx, f.itemID, f.supplierID, 6); err != nil {
		t.Fatalf("sell to zero: %v", err)
	}
	if qty := f.quantity(t); qty != 0 {
		t.Fatalf("expected quantity 0, got %d", qty)
	}
}

func TestSellRefusesInsufficientStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if err := f.repo.UpsertInventory(ctx, &model.ProductSupplierInventory{
		ItemID: f.itemID, SupplierID: f.supplierID, AvailableQuantity: 3,
	}); err != nil {
		t.Fatalf("upsert inventory: %v", err)
	}

	err := f.repo.Sell(ctx, f.itemID, f.supplierID, 5)
	if !errors.Is(err, sales.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if qty := f.quantity(t); qty != 3 {
		t.Fatalf("failed sell must not change stock, got %d", qty)
	}

	// A missing stock row reads the same as an empty one.
	err = f.repo.Sell(ctx, f.itemID, f.supplierID+100, 1)
	if !errors.Is(err, sales.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock for missing row, got %v", err)
	}
}

func TestProcureCreatesOrIncrements(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// No stock row yet; procure creates one.
	if err := f.repo.Procure(ctx, f.itemID, f.supplierID, 7); err != nil {
		t.Fatalf("procure into empty: %v", err)
	}
	if qty := f.quantity(t); qty != 7 {
		t.Fatalf("expected quantity 7, got %d", qty)
	}

	if err := f.repo.Procure(ctx, f.itemID, f.supplierID, 3); err != nil {
		t.Fatalf("procure increment: %v", err)
	}
	if qty := f.quantity(t); qty != 10 {
		t.Fatalf("expected quantity 10, got %d", qty)
	}
}

func TestProcureConcurrentIncrementsAllLand(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// Every increment must survive, including the ones racing to create the
	// stock row in the first place.
	const workers = 8
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- f.repo.Procure(ctx, f.itemID, f.supplierID, 5)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("procure: %v", err)
		}
	}

	if qty := f.quantity(t); qty != workers*5 {
		t.Fatalf("expected quantity %d, got %d", workers*5, qty)
	}
}

func TestLinkWritesBothRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.repo.Link(ctx,
		&model.ProductSupplierInfo{ItemID: f.itemID, SupplierID: f.supplierID, UnitPrice: 4.5},
		&model.ProductSupplierInventory{ItemID: f.itemID, SupplierID: f.supplierID, AvailableQuantity: 12})
	if err != nil {
		t.Fatalf("link: %v", err)
	}

	var price float64
	if err := f.store.GetContext(ctx, &price, `
		SELECT unit_price FROM product_supplier_info
		WHERE item_id = ? AND supplier_id = ?
	`, f.itemID, f.supplierID); err != nil {
		t.Fatalf("get price: %v", err)
	}
	if price != 4.5 {
		t.Fatalf("expected price 4.5, got %v", price)
	}
	if qty := f.quantity(t); qty != 12 {
		t.Fatalf("expected quantity 12, got %d", qty)
	}
}

func TestLinkRollsBackWhenInventoryInsertFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// The inventory row references a supplier that does not exist, so its
	// insert violates the foreign key. The already written price row must not
	// survive the failure.
	err := f.repo.Link(ctx,
		&model.ProductSupplierInfo{ItemID: f.itemID, SupplierID: f.supplierID, UnitPrice: 4.5},
		&model.ProductSupplierInventory{ItemID: f.itemID, SupplierID: f.supplierID + 100, AvailableQuantity: 12})
	if err == nil {
		t.Fatal("expected link to fail")
	}

	var count int
	if err := f.store.GetContext(ctx, &count,
		`SELECT count(*) FROM product_supplier_info`); err != nil {
		t.Fatalf("count info: %v", err)
	}
	if count != 0 {
		t.Fatalf("failed link must not leave a price row, found %d", count)
	}
}

func TestUnlinkRemovesBothRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if err := f.repo.UpsertInfo(ctx, &model.ProductSupplierInfo{
		ItemID: f.itemID, SupplierID: f.supplierID, UnitPrice: 1.5,
	}); err != nil {
		t.Fatalf("upsert info: %v", err)
	}
	if err := f.repo.UpsertInventory(ctx, &model.ProductSupplierInventory{
		ItemID: f.itemID, SupplierID: f.supplierID, AvailableQuantity: 5,
	}); err != nil {
		t.Fatalf("upsert inventory: %v", err)
	}

	if err := f.repo.Unlink(ctx, f.itemID, f.supplierID); err != nil {
		t.Fatalf("unlink: %v", err)
	}

	var count int
	if err := f.store.GetContext(ctx, &count, `
		SELECT count(*) FROM product_supplier_info WHERE item_id = ? AND supplier_id = ?
	`, f.itemID, f.supplierID); err != nil {
		t.Fatalf("count info: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected info row removed, found %d", count)
	}
	if err := f.store.GetContext(ctx, &count, `
		SELECT count(*) FROM product_supplier_inventory WHERE item_id = ? AND supplier_id = ?
	`, f.itemID, f.supplierID); err != nil {
		t.Fatalf("count inventory: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected inventory row removed, found %d", count)
	}
}

func TestItemSuppliersListsLinks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if err := f.repo.UpsertInfo(ctx, &model.ProductSupplierInfo{
		ItemID: f.itemID, SupplierID: f.supplierID, UnitPrice: 8.25,
	}); err != nil {
		t.Fatalf("upsert info: %v", err)
	}

	rows, err := f.repo.ItemSuppliers(ctx, f.itemID)
	if err != nil {
		t.Fatalf("item suppliers: %v", err)
	}
	if len(rows) != 1 || rows[0].UnitPrice != 8.25 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
