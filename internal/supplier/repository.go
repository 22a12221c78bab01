package supplier

import (
	"context"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/model"
)

type Repository interface {
	// Create and Update write the supplier row and its contact children
	// atomically.
	Create(ctx context.Context, supplier *model.Supplier) error
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*model.Supplier, error)
	FindByCode(ctx context.Context, code string) (*model.Supplier, error)

	Contacts(ctx context.Context, supplierID int64) ([]catalog.SupplierContactRow, error)
	Items(ctx context.Context, supplierID int64) ([]catalog.SupplierItemRow, error)
	ListShortInfo(ctx context.Context) ([]catalog.SupplierShortInfoRow, error)
}
