package sales

import (
	"context"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/sales/dto"
)

type UseCase interface {
	LinkSupplier(ctx context.Context, input *dto.LinkInput) error
	UnlinkSupplier(ctx context.Context, itemID, supplierID int64) error

	SellItem(ctx context.Context, input *dto.StockMovementInput) error
	ProcureItem(ctx context.Context, input *dto.StockMovementInput) error

	GetItemSuppliers(ctx context.Context, itemID int64) ([]catalog.SupplierItemRow, error)
	ListSalesShortInfo(ctx context.Context) ([]catalog.SaleShortInfoRow, error)
	GetItemSuppliersSales(ctx context.Context, itemID int64) ([]catalog.ItemSupplierSaleRow, error)
}
