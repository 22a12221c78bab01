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

func (r *SQLiteRepository) Create(ctx context.Context, sup *model.Supplier) error {
	return r.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO suppliers (name, code) VALUES (:name, :code)
		`, sup)
		if err != nil {
			return err
		}
		sup.ID, err = res.LastInsertId()
		if err != nil {
			return err
		}
		return insertContacts(ctx, tx, sup)
	})
}

func (r *SQLiteRepository) Update(ctx context.Context, sup *model.Supplier) error {
	return r.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, `
			UPDATE suppliers SET name = :name, code = :code WHERE id = :id
		`, sup); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM supplier_contacts WHERE supplier_id = ?`, sup.ID); err != nil {
			return err
		}
		return insertContacts(ctx, tx, sup)
	})
}

func insertContacts(ctx context.Context, tx *sqlx.Tx, sup *model.Supplier) error {
	for i := range sup.Contacts {
		sup.Contacts[i].SupplierID = sup.ID
		c := sup.Contacts[i]
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO supplier_contacts (supplier_id, contact_type_id, contact_value, is_default)
			VALUES (?, ?, ?, ?)
		`, c.SupplierID, c.ContactTypeID, c.Value, c.IsDefault); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the supplier row only; contact and product link rows go
// with it through the schema's cascade rules.
func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.store.ExecContext(ctx, `DELETE FROM suppliers WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	rows, err := catalog.Query[catalog.SupplierRow](ctx, r.runner, catalog.SupplierByID(), id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.withContacts(ctx, rows[0])
}

func (r *SQLiteRepository) FindByCode(ctx context.Context, code string) (*model.Supplier, error) {
	rows, err := catalog.Query[catalog.SupplierRow](ctx, r.runner, catalog.SupplierByCode(), code)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.withContacts(ctx, rows[0])
}

func (r *SQLiteRepository) withContacts(ctx context.Context, row catalog.SupplierRow) (*model.Supplier, error) {
	sup := &model.Supplier{ID: row.ID, Name: row.Name, Code: row.Code}
	contacts, err := r.Contacts(ctx, sup.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range contacts {
		sup.Contacts = append(sup.Contacts, model.SupplierContact{
			SupplierID:    c.SupplierID,
			ContactTypeID: c.ContactTypeID,
			Value:         c.Value,
			IsDefault:     c.IsDefault,
		})
	}
	return sup, nil
}

func (r *SQLiteRepository) Contacts(ctx context.Context, supplierID int64) ([]catalog.SupplierContactRow, error) {
	return catalog.Query[catalog.SupplierContactRow](ctx, r.runner,
		catalog.SupplierContacts(), supplierID)
}

func (r *SQLiteRepository) Items(ctx context.Context, supplierID int64) ([]catalog.SupplierItemRow, error) {
	return catalog.Query[catalog.SupplierItemRow](ctx, r.runner,
		catalog.SupplierItems(), supplierID)
}

func (r *SQLiteRepository) ListShortInfo(ctx context.Context) ([]catalog.SupplierShortInfoRow, error) {
	return catalog.Query[catalog.SupplierShortInfoRow](ctx, r.runner,
		catalog.SuppliersShortInfo())
}
