package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

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

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) error {
	return r.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO products (name, sku, description, category_id)
			VALUES (:name, :sku, :description, :category_id)
		`, p)
		if err != nil {
			return err
		}
		p.ID, err = res.LastInsertId()
		if err != nil {
			return err
		}
		return insertChildren(ctx, tx, p)
	})
}

func (r *SQLiteRepository) Update(ctx context.Context, p *model.Product) error {
	return r.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, `
			UPDATE products
			SET name = :name,
			    sku = :sku,
			    description = :description,
			    category_id = :category_id
			WHERE id = :id
		`, p); err != nil {
			return err
		}

		// Children are replaced wholesale; the input carries the complete
		// intended set, not a delta.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM product_images WHERE item_id = ?`, p.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM product_attributes WHERE item_id = ?`, p.ID); err != nil {
			return err
		}
		return insertChildren(ctx, tx, p)
	})
}

func insertChildren(ctx context.Context, tx *sqlx.Tx, p *model.Product) error {
	for i := range p.Images {
		p.Images[i].ItemID = p.ID
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO product_images (item_id, image_uri, is_default)
			VALUES (?, ?, ?)
		`, p.Images[i].ItemID, p.Images[i].ImageURI, p.Images[i].IsDefault); err != nil {
			return err
		}
	}
	for i := range p.Attributes {
		p.Attributes[i].ItemID = p.ID
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO product_attributes (item_id, attr_name, attr_value)
			VALUES (?, ?, ?)
		`, p.Attributes[i].ItemID, p.Attributes[i].Name, p.Attributes[i].Value); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the product row only; image, attribute and supplier link
// rows go with it through the schema's cascade rules.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.store.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	err := r.store.GetContext(ctx, &p, `
		SELECT id, name, sku, description, category_id
		FROM products WHERE id = ?
	`, id)
	if err != nil {
		if store.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	images, err := r.Images(ctx, id)
	if err != nil {
		return nil, err
	}
	attrs, err := r.Attributes(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		p.Images = append(p.Images, model.ProductImage{
			ItemID: img.ItemID, ImageURI: img.ImageURI, IsDefault: img.IsDefault,
		})
	}
	for _, a := range attrs {
		p.Attributes = append(p.Attributes, model.ProductAttribute{
			ItemID: a.ItemID, Name: a.Name, Value: a.Value,
		})
	}
	return &p, nil
}

func (r *SQLiteRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	rows, err := catalog.Query[catalog.ItemRefRow](ctx, r.runner, catalog.ItemBySKU(), sku)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &model.Product{ID: rows[0].ID, Name: rows[0].Name, SKU: rows[0].SKU}, nil
}

func (r *SQLiteRepository) FindDetail(ctx context.Context, id int64) (*catalog.ItemDetailRow, error) {
	rows, err := catalog.Query[catalog.ItemDetailRow](ctx, r.runner, catalog.ItemByID(), id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *SQLiteRepository) ListShortInfo(ctx context.Context) ([]catalog.ItemShortInfoRow, error) {
	return catalog.Query[catalog.ItemShortInfoRow](ctx, r.runner,
		catalog.ItemsShortInfo(), catalog.DefaultFlagArg)
}

func (r *SQLiteRepository) Images(ctx context.Context, itemID int64) ([]catalog.ImageRow, error) {
	return catalog.Query[catalog.ImageRow](ctx, r.runner, catalog.ImagesByItem(), itemID)
}

func (r *SQLiteRepository) Attributes(ctx context.Context, itemID int64) ([]catalog.AttributeRow, error) {
	return catalog.Query[catalog.AttributeRow](ctx, r.runner, catalog.AttributesByItem(), itemID)
}
