package product

import (
	"context"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/model"
)

type Repository interface {
	// Create and Update write the product row and its image and attribute
	// children atomically.
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error

	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)

	FindDetail(ctx context.Context, id int64) (*catalog.ItemDetailRow, error)
	ListShortInfo(ctx context.Context) ([]catalog.ItemShortInfoRow, error)
	Images(ctx context.Context, itemID int64) ([]catalog.ImageRow, error)
	Attributes(ctx context.Context, itemID int64) ([]catalog.AttributeRow, error)
}
