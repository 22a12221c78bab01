package sales

import (
	"context"
	"errors"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/model"
)

// ErrInsufficientStock is returned by Sell when the supplier does not hold
// enough quantity; the stored quantity is left unchanged.
var ErrInsufficientStock = errors.New("insufficient stock")

type Repository interface {
	// UpsertInfo and UpsertInventory insert or replace the per-supplier
	// price and stock rows keyed on (item, supplier). Link writes both rows
	// in one transaction so a failure cannot leave a price without stock.
	UpsertInfo(ctx context.Context, info *model.ProductSupplierInfo) error
	UpsertInventory(ctx context.Context, inv *model.ProductSupplierInventory) error
	Link(ctx context.Context, info *model.ProductSupplierInfo, inv *model.ProductSupplierInventory) error

	// Sell atomically decrements stock, refusing to go below zero.
	// Procure increments stock, creating the row when absent.
	Sell(ctx context.Context, itemID, supplierID, quantity int64) error
	Procure(ctx context.Context, itemID, supplierID, quantity int64) error

	// Unlink removes both the price and stock rows of one (item, supplier)
	// pair.
	Unlink(ctx context.Context, itemID, supplierID int64) error

	ItemSuppliers(ctx context.Context, itemID int64) ([]catalog.SupplierItemRow, error)
	SalesShortInfo(ctx context.Context) ([]catalog.SaleShortInfoRow, error)
	ItemSuppliersSales(ctx context.Context, itemID int64) ([]catalog.ItemSupplierSaleRow, error)
}
