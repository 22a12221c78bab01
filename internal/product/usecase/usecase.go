package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/category"
	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/product"
	"github.com/storekeep/inventory-service/internal/product/dto"
)

var (
	ErrItemNotFound          = errors.New("item not found")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrMultipleDefaultImages = errors.New("more than one image flagged default")
)

type itemUseCase struct {
	repo       product.Repository
	categories category.Repository
	log        *zap.Logger
}

func NewItemUseCase(repo product.Repository, categories category.Repository, log *zap.Logger) product.UseCase {
	return &itemUseCase{repo: repo, categories: categories, log: log}
}

func (uc *itemUseCase) CreateItem(ctx context.Context, input *dto.CreateItemInput) (*model.Product, error) {
	p, err := uc.buildProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.log.Info("item created",
		zap.Int64("id", p.ID), zap.String("sku", p.SKU), zap.String("name", p.Name))
	return p, nil
}

func (uc *itemUseCase) UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.Product, error) {
	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrItemNotFound
	}

	p, err := uc.buildProduct(ctx, &input.CreateItemInput)
	if err != nil {
		return nil, err
	}
	p.ID = input.ID

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.log.Info("item updated", zap.Int64("id", p.ID), zap.String("sku", p.SKU))
	return p, nil
}

// buildProduct validates the input, resolves the category by name and
// normalizes the default image: when no image is flagged the first becomes
// the default, and more than one flagged image is rejected before the
// schema's unique index would.
func (uc *itemUseCase) buildProduct(ctx context.Context, input *dto.CreateItemInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New("item name is required")
	}
	if strings.TrimSpace(input.SKU) == "" {
		return nil, errors.New("item sku is required")
	}

	var categoryID *int64
	if input.CategoryName != "" {
		c, err := uc.categories.FindByName(ctx, input.CategoryName)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, input.CategoryName)
		}
		categoryID = &c.ID
	}

	defaults := 0
	for _, img := range input.Images {
		if img.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, ErrMultipleDefaultImages
	}

	p := &model.Product{
		Name:        name,
		SKU:         input.SKU,
		Description: input.Description,
		CategoryID:  categoryID,
	}
	for i, img := range input.Images {
		p.Images = append(p.Images, model.ProductImage{
			ImageURI:  img.URI,
			IsDefault: img.IsDefault || (defaults == 0 && i == 0),
		})
	}
	for _, a := range input.Attributes {
		p.Attributes = append(p.Attributes, model.ProductAttribute{
			Name: a.Name, Value: a.Value,
		})
	}
	return p, nil
}

func (uc *itemUseCase) DeleteItem(ctx context.Context, id int64) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrItemNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *itemUseCase) GetItemDetails(ctx context.Context, id int64) (*dto.ItemDetails, error) {
	detail, err := uc.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}

	images, err := uc.repo.Images(ctx, id)
	if err != nil {
		return nil, err
	}
	attrs, err := uc.repo.Attributes(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ItemDetails{ItemDetailRow: *detail, Images: images, Attributes: attrs}, nil
}

func (uc *itemUseCase) GetItemBySKU(ctx context.Context, sku string) (*model.Product, error) {
	return uc.repo.FindBySKU(ctx, sku)
}

func (uc *itemUseCase) ListItemsShortInfo(ctx context.Context) ([]catalog.ItemShortInfoRow, error) {
	return uc.repo.ListShortInfo(ctx)
}
