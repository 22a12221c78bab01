package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/sales"
	"github.com/storekeep/inventory-service/internal/sales/dto"
)

var (
	ErrQuantityNotPositive = errors.New("quantity must be positive")
	ErrNegativePrice       = errors.New("unit price must not be negative")
	ErrNegativeQuantity    = errors.New("available quantity must not be negative")
)

type salesUseCase struct {
	repo sales.Repository
	log  *zap.Logger
}

func NewSalesUseCase(repo sales.Repository, log *zap.Logger) sales.UseCase {
	return &salesUseCase{repo: repo, log: log}
}

func (uc *salesUseCase) LinkSupplier(ctx context.Context, input *dto.LinkInput) error {
	if input.UnitPrice < 0 {
		return ErrNegativePrice
	}
	if input.AvailableQuantity < 0 {
		return ErrNegativeQuantity
	}

	err := uc.repo.Link(ctx,
		&model.ProductSupplierInfo{
			ItemID:     input.ItemID,
			SupplierID: input.SupplierID,
			UnitPrice:  input.UnitPrice,
		},
		&model.ProductSupplierInventory{
			ItemID:            input.ItemID,
			SupplierID:        input.SupplierID,
			AvailableQuantity: input.AvailableQuantity,
		})
	if err != nil {
		return err
	}

	uc.log.Info("supplier linked to item",
		zap.Int64("item_id", input.ItemID),
		zap.Int64("supplier_id", input.SupplierID),
		zap.Float64("unit_price", input.UnitPrice),
		zap.Int64("available_quantity", input.AvailableQuantity))
	return nil
}

func (uc *salesUseCase) UnlinkSupplier(ctx context.Context, itemID, supplierID int64) error {
	return uc.repo.Unlink(ctx, itemID, supplierID)
}

func (uc *salesUseCase) SellItem(ctx context.Context, input *dto.StockMovementInput) error {
	if input.Quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if err := uc.repo.Sell(ctx, input.ItemID, input.SupplierID, input.Quantity); err != nil {
		return err
	}

	uc.log.Info("stock sold",
		zap.Int64("item_id", input.ItemID),
		zap.Int64("supplier_id", input.SupplierID),
		zap.Int64("quantity", input.Quantity))
	return nil
}

func (uc *salesUseCase) ProcureItem(ctx context.Context, input *dto.StockMovementInput) error {
	if input.Quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if err := uc.repo.Procure(ctx, input.ItemID, input.SupplierID, input.Quantity); err != nil {
		return err
	}

	uc.log.Info("stock procured",
		zap.Int64("item_id", input.ItemID),
		zap.Int64("supplier_id", input.SupplierID),
		zap.Int64("quantity", input.Quantity))
	return nil
}

func (uc *salesUseCase) GetItemSuppliers(ctx context.Context, itemID int64) ([]catalog.SupplierItemRow, error) {
	return uc.repo.ItemSuppliers(ctx, itemID)
}

func (uc *salesUseCase) ListSalesShortInfo(ctx context.Context) ([]catalog.SaleShortInfoRow, error) {
	return uc.repo.SalesShortInfo(ctx)
}

func (uc *salesUseCase) GetItemSuppliersSales(ctx context.Context, itemID int64) ([]catalog.ItemSupplierSaleRow, error) {
	return uc.repo.ItemSuppliersSales(ctx, itemID)
}
