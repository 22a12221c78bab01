package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/config"
	"github.com/storekeep/inventory-service/internal/store"
)

func newTestRunner(t *testing.T) (*store.Store, *Runner) {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog_test.db")

	s, err := store.Open(config.SQLite{Path: dbPath, BusyTimeout: 5000}, zap.NewNop())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := s.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s, NewRunner(s)
}

func mustInsert(t *testing.T, s *store.Store, query string, args ...any) int64 {
	t.Helper()
	res, err := s.ExecContext(context.Background(), query, args...)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}
	return id
}

func electronicsID(t *testing.T, s *store.Store) int64 {
	t.Helper()
	var id int64
	if err := s.GetContext(context.Background(), &id,
		`SELECT id FROM categories WHERE name = 'Electronics'`); err != nil {
		t.Fatalf("electronics category: %v", err)
	}
	return id
}

func TestCategoriesListsAllSortedByName(t *testing.T) {
	ctx := context.Background()
	s, r := newTestRunner(t)

	// "Audio" sorts between the seeded names but gets the highest id, so the
	// order below can only come from the name column.
	mustInsert(t, s, `INSERT INTO categories (name) VALUES ('Audio')`)

	rows, err := Query[CategoryRow](ctx, r, Categories())
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 11 {
		t.Fatalf("expected 11 categories, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Name >= rows[i].Name {
			t.Fatalf("categories not sorted by name: %q before %q",
				rows[i-1].Name, rows[i].Name)
		}
	}
	for _, row := range rows {
		if row.ID == 0 {
			t.Fatalf("category %q has no id", row.Name)
		}
	}
}

func TestItemsShortInfoPicksDefaultImage(t *testing.T) {
	ctx := context.Background()
	s, r := newTestRunner(t)
	catID := electronicsID(t, s)

	withImages := mustInsert(t, s,
		`INSERT INTO products (name, sku, description, category_id) VALUES ('Phone', 'PHN-1', '', ?)`, catID)
	mustInsert(t, s,
		`INSERT INTO product_images (item_id, image_uri, is_default) VALUES (?, 'file:///front.png', 1)`, withImages)
	mustInsert(t, s,
		`INSERT INTO product_images (item_id, image_uri, is_default) VALUES (?, 'file:///back.png', 0)`, withImages)

	withoutImages := mustInsert(t, s,
		`INSERT INTO products (name, sku, description, category_id) VALUES ('Cable', 'CBL-1', '', ?)`, catID)

	rows, err := Query[ItemShortInfoRow](ctx, r, ItemsShortInfo(), DefaultFlagArg)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected one row per item, got %d rows", len(rows))
	}

	byID := map[int64]ItemShortInfoRow{}
	for _, row := range rows {
		byID[row.ItemID] = row
	}

	phone := byID[withImages]
	if phone.ImageURI == nil || *phone.ImageURI != "file:///front.png" {
		t.Fatalf("expected default image uri, got %+v", phone.ImageURI)
	}
	if phone.CategoryName != "Electronics" {
		t.Fatalf("expected category name Electronics, got %q", phone.CategoryName)
	}

	cable := byID[withoutImages]
	if cable.ImageURI != nil {
		t.Fatalf("expected nil image uri for item without images, got %q", *cable.ImageURI)
	}
}

func TestSalesShortInfoSelectsTopSupplier(t *testing.T) {
	ctx := context.Background()
	s, r := newTestRunner(t)
	catID := electronicsID(t, s)

	item := mustInsert(t, s,
		`INSERT INTO products (name, sku, description, category_id) VALUES ('Router', 'RTR-1', '', ?)`, catID)
	small := mustInsert(t, s, `INSERT INTO suppliers (name, code) VALUES ('Small Co', 'SML')`)
	big := mustInsert(t, s, `INSERT INTO suppliers (name, code) VALUES ('Big Co', 'BIG')`)

	mustInsert(t, s,
		`INSERT INTO product_supplier_info (item_id, supplier_id, unit_price) VALUES (?, ?, 9.5)`, item, small)
	mustInsert(t, s,
		`INSERT INTO product_supplier_info (item_id, supplier_id, unit_price) VALUES (?, ?, 11.0)`, item, big)
	mustInsert(t, s,
		`INSERT INTO product_supplier_inventory (item_id, supplier_id, available_quantity) VALUES (?, ?, 5)`, item, small)
	mustInsert(t, s,
		`INSERT INTO product_supplier_inventory (item_id, supplier_id, available_quantity) VALUES (?, ?, 20)`, item, big)

	rows, err := Query[SaleShortInfoRow](ctx, r, SalesShortInfo(), DefaultFlagArg)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one row for the item, got %d", len(rows))
	}

	row := rows[0]
	if row.SupplierID != big {
		t.Fatalf("expected supplier with most stock (%d), got %d", big, row.SupplierID)
	}
	if row.SupplierQuantity != 20 {
		t.Fatalf("expected supplier quantity 20, got %d", row.SupplierQuantity)
	}
	if row.TotalQuantity != 25 {
		t.Fatalf("expected total quantity 25, got %d", row.TotalQuantity)
	}
	if row.UnitPrice != 11.0 {
		t.Fatalf("expected the top supplier's price 11.0, got %v", row.UnitPrice)
	}
	if row.ImageURI != nil {
		t.Fatalf("expected nil image uri, got %q", *row.ImageURI)
	}
}

func TestSalesShortInfoTieBreaksOnLowestSupplierID(t *testing.T) {
	ctx := context.Background()
	s, r := newTestRunner(t)
	catID := electronicsID(t, s)

	item := mustInsert(t, s,
		`INSERT INTO products (name, sku, description, category_id) VALUES ('Switch', 'SWT-1', '', ?)`, catID)
	first := mustInsert(t, s, `INSERT INTO suppliers (name, code) VALUES ('First', 'FST')`)
	second := mustInsert(t, s, `INSERT INTO suppliers (name, code) VALUES ('Second', 'SND')`)

	for _, sup := range []int64{first, second} {
		mustInsert(t, s,
			`INSERT INTO product_supplier_info (item_id, supplier_id, unit_price) VALUES (?, ?, 3.0)`, item, sup)
		mustInsert(t, s,
			`INSERT INTO product_supplier_inventory (item_id, supplier_id, available_quantity) VALUES (?, ?, 7)`, item, sup)
	}

	rows, err := Query[SaleShortInfoRow](ctx, r, SalesShortInfo(), DefaultFlagArg)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0].SupplierID != first {
		t.Fatalf("equal quantities must resolve to lowest supplier id %d, got %d",
			first, rows[0].SupplierID)
	}
}

func TestSuppliersShortInfoComputedColumns(t *testing.T) {
	ctx := context.Background()
	s, r := newTestRunner(t)
	catID := electronicsID(t, s)

	sup := mustInsert(t, s, `INSERT INTO suppliers (name, code) VALUES ('Acme', 'ACM')`)
	mustInsert(t, s, `
		INSERT INTO supplier_contacts (supplier_id, contact_type_id, contact_value, is_default)
		VALUES (?, 0, '+1 555 0100', 1)
	`, sup)
	mustInsert(t, s, `
		INSERT INTO supplier_contacts (supplier_id, contact_type_id, contact_value, is_default)
		VALUES (?, 1, 'sales@acme.test', 0)
	`, sup)

	for _, sku := range []string{"ACM-1", "ACM-2"} {
		item := mustInsert(t, s,
			`INSERT INTO products (name, sku, description, category_id) VALUES (?, ?, '', ?)`, sku, sku, catID)
		mustInsert(t, s,
			`INSERT INTO product_supplier_info (item_id, supplier_id, unit_price) VALUES (?, ?, 1.0)`, item, sup)
	}

	rows, err := Query[SupplierShortInfoRow](ctx, r, SuppliersShortInfo())
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one supplier row, got %d", len(rows))
	}

	row := rows[0]
	if row.DefaultPhone == nil || *row.DefaultPhone != "+1 555 0100" {
		t.Fatalf("expected default phone, got %+v", row.DefaultPhone)
	}
	// The email contact exists but is not flagged default.
	if row.DefaultEmail != nil {
		t.Fatalf("expected nil default email, got %q", *row.DefaultEmail)
	}
	if row.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", row.ItemCount)
	}
}

func TestItemSuppliersSalesListsEverySupplier(t *testing.T) {
	ctx := context.Background()
	s, r := newTestRunner(t)
	catID := electronicsID(t, s)

	item := mustInsert(t, s,
		`INSERT INTO products (name, sku, description, category_id) VALUES ('Modem', 'MDM-1', '', ?)`, catID)
	a := mustInsert(t, s, `INSERT INTO suppliers (name, code) VALUES ('A', 'SUP-A')`)
	b := mustInsert(t, s, `INSERT INTO suppliers (name, code) VALUES ('B', 'SUP-B')`)

	mustInsert(t, s,
		`INSERT INTO product_supplier_info (item_id, supplier_id, unit_price) VALUES (?, ?, 4.0)`, item, a)
	mustInsert(t, s,
		`INSERT INTO product_supplier_info (item_id, supplier_id, unit_price) VALUES (?, ?, 5.0)`, item, b)
	mustInsert(t, s,
		`INSERT INTO product_supplier_inventory (item_id, supplier_id, available_quantity) VALUES (?, ?, 3)`, item, a)
	mustInsert(t, s,
		`INSERT INTO product_supplier_inventory (item_id, supplier_id, available_quantity) VALUES (?, ?, 8)`, item, b)

	rows, err := Query[ItemSupplierSaleRow](ctx, r, ItemSuppliersSales(), item)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two supplier rows, got %d", len(rows))
	}
	seen := map[int64]int64{}
	for _, row := range rows {
		seen[row.SupplierID] = row.AvailableQuantity
	}
	if seen[a] != 3 || seen[b] != 8 {
		t.Fatalf("unexpected quantities: %v", seen)
	}
}

func TestQueriesReturnEmptyNotError(t *testing.T) {
	ctx := context.Background()
	_, r := newTestRunner(t)

	attrs, err := Query[AttributeRow](ctx, r, AttributesByItem(), int64(4242))
	if err != nil {
		t.Fatalf("expected no error for unknown item, got %v", err)
	}
	if attrs == nil || len(attrs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", attrs)
	}

	detail, err := Query[ItemDetailRow](ctx, r, ItemByID(), int64(4242))
	if err != nil {
		t.Fatalf("expected no error for unknown item, got %v", err)
	}
	if len(detail) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(detail))
	}
}
