package supplier

import (
	"context"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/supplier/dto"
)

type UseCase interface {
	CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error

	GetSupplier(ctx context.Context, id int64) (*model.Supplier, error)
	GetSupplierByCode(ctx context.Context, code string) (*model.Supplier, error)
	GetSupplierItems(ctx context.Context, id int64) ([]catalog.SupplierItemRow, error)
	ListSuppliersShortInfo(ctx context.Context) ([]catalog.SupplierShortInfoRow, error)
}
