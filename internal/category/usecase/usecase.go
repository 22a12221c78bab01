package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/internal/category"
	"github.com/storekeep/inventory-service/internal/model"
)

var ErrNameRequired = errors.New("category name is required")

type categoryUseCase struct {
	repo category.Repository
	log  *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, log *zap.Logger) category.UseCase {
	return &categoryUseCase{repo: repo, log: log}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	c := &model.Category{Name: name}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.log.Info("category created", zap.Int64("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *categoryUseCase) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	return uc.repo.FindByName(ctx, name)
}
