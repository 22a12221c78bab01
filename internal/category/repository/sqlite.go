package repository

import (
	"context"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/store"
)

type SQLiteRepository struct {
	store  *store.Store
	runner *catalog.Runner
}

func NewSQLiteRepository(s *store.Store) *SQLiteRepository {
	return &SQLiteRepository{store: s, runner: catalog.NewRunner(s)}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *model.Category) error {
	res, err := r.store.ExecContext(ctx,
		`INSERT INTO categories (name) VALUES (?)`, c.Name)
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	rows, err := catalog.Query[catalog.CategoryRow](ctx, r.runner, catalog.Categories())
	if err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, model.Category{ID: row.ID, Name: row.Name})
	}
	return categories, nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	rows, err := catalog.Query[catalog.CategoryRow](ctx, r.runner, catalog.CategoryByID(), id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &model.Category{ID: rows[0].ID, Name: rows[0].Name}, nil
}

func (r *SQLiteRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	rows, err := catalog.Query[catalog.CategoryRow](ctx, r.runner, catalog.CategoryByName(), name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &model.Category{ID: rows[0].ID, Name: rows[0].Name}, nil
}
