package product

import (
	"context"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/product/dto"
)

type UseCase interface {
	CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.Product, error)
	UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.Product, error)
	DeleteItem(ctx context.Context, id int64) error

	GetItemDetails(ctx context.Context, id int64) (*dto.ItemDetails, error)
	GetItemBySKU(ctx context.Context, sku string) (*model.Product, error)
	ListItemsShortInfo(ctx context.Context) ([]catalog.ItemShortInfoRow, error)
}
