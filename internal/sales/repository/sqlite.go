package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/sales"
	"github.com/storekeep/inventory-service/internal/store"
)

type SQLiteRepository struct {
	store  *store.Store
	runner *catalog.Runner
}

func NewSQLiteRepository(s *store.Store) *SQLiteRepository {
	return &SQLiteRepository{store: s, runner: catalog.NewRunner(s)}
}

// UpsertInfo relies on the table's replace-on-conflict rule for the
// (item_id, supplier_id) key: a plain insert either creates or overwrites.
func (r *SQLiteRepository) UpsertInfo(ctx context.Context, info *model.ProductSupplierInfo) error {
	_, err := r.store.ExecContext(ctx, `
		INSERT INTO product_supplier_info (item_id, supplier_id, unit_price)
		VALUES (?, ?, ?)
	`, info.ItemID, info.SupplierID, info.UnitPrice)
	return err
}

func (r *SQLiteRepository) UpsertInventory(ctx context.Context, inv *model.ProductSupplierInventory) error {
	_, err := r.store.ExecContext(ctx, `
		INSERT INTO product_supplier_inventory (item_id, supplier_id, available_quantity)
		VALUES (?, ?, ?)
	`, inv.ItemID, inv.SupplierID, inv.AvailableQuantity)
	return err
}

// Link writes the price and stock rows atomically. Either both survive or
// neither does; a supplier is never left half-linked to an item.
func (r *SQLiteRepository) Link(ctx context.Context, info *model.ProductSupplierInfo, inv *model.ProductSupplierInventory) error {
	return r.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO product_supplier_info (item_id, supplier_id, unit_price)
			VALUES (?, ?, ?)
		`, info.ItemID, info.SupplierID, info.UnitPrice); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_supplier_inventory (item_id, supplier_id, available_quantity)
			VALUES (?, ?, ?)
		`, inv.ItemID, inv.SupplierID, inv.AvailableQuantity)
		return err
	})
}

// Sell decrements with a guard in the statement itself, so concurrent sells
// cannot interleave a check with a write. Zero affected rows means either
// the stock row does not exist or it holds less than the requested quantity.
func (r *SQLiteRepository) Sell(ctx context.Context, itemID, supplierID, quantity int64) error {
	res, err := r.store.ExecContext(ctx, `
		UPDATE product_supplier_inventory
		SET available_quantity = available_quantity - ?
		WHERE item_id = ? AND supplier_id = ? AND available_quantity >= ?
	`, quantity, itemID, supplierID, quantity)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: item %d supplier %d", sales.ErrInsufficientStock, itemID, supplierID)
	}
	return nil
}

// Procure increments inside one transaction so the update-then-insert pair
// cannot interleave with a concurrent procure: two callers both seeing zero
// affected rows would otherwise insert twice, and the table's replace rule
// would swallow one of the increments.
func (r *SQLiteRepository) Procure(ctx context.Context, itemID, supplierID, quantity int64) error {
	return r.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE product_supplier_inventory
			SET available_quantity = available_quantity + ?
			WHERE item_id = ? AND supplier_id = ?
		`, quantity, itemID, supplierID)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows > 0 {
			return nil
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO product_supplier_inventory (item_id, supplier_id, available_quantity)
			VALUES (?, ?, ?)
		`, itemID, supplierID, quantity)
		return err
	})
}

func (r *SQLiteRepository) Unlink(ctx context.Context, itemID, supplierID int64) error {
	return r.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM product_supplier_info WHERE item_id = ? AND supplier_id = ?
		`, itemID, supplierID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			DELETE FROM product_supplier_inventory WHERE item_id = ? AND supplier_id = ?
		`, itemID, supplierID)
		return err
	})
}

func (r *SQLiteRepository) ItemSuppliers(ctx context.Context, itemID int64) ([]catalog.SupplierItemRow, error) {
	return catalog.Query[catalog.SupplierItemRow](ctx, r.runner,
		catalog.ItemSuppliers(), itemID)
}

func (r *SQLiteRepository) SalesShortInfo(ctx context.Context) ([]catalog.SaleShortInfoRow, error) {
	return catalog.Query[catalog.SaleShortInfoRow](ctx, r.runner,
		catalog.SalesShortInfo(), catalog.DefaultFlagArg)
}

func (r *SQLiteRepository) ItemSuppliersSales(ctx context.Context, itemID int64) ([]catalog.ItemSupplierSaleRow, error) {
	return catalog.Query[catalog.ItemSupplierSaleRow](ctx, r.runner,
		catalog.ItemSuppliersSales(), itemID)
}
