package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Fixed reference data loaded once at schema creation. Categories beyond
// this set can be added by users; contact types cannot.
var seedCategories = []string{
	"Appliances",
	"Books",
	"Clothing",
	"Computers",
	"Electronics",
	"Furniture",
	"Groceries",
	"Sports",
	"Stationery",
	"Toys",
}

var seedContactTypes = []struct {
	ID   int64
	Name string
}{
	{ID: 0, Name: "Phone"},
	{ID: 1, Name: "Email"},
}

// Seed populates the lookup tables with their predefined rows. Each seed set
// is inserted inside one transaction with an all-or-nothing contract: any
// failed insert discards the whole set. Tables that already contain rows are
// left untouched, so Seed is safe to call on every startup.
func (s *Store) Seed(ctx context.Context) error {
	if err := s.seedCategories(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := s.seedContactTypes(ctx); err != nil {
		return fmt.Errorf("seed contact types: %w", err)
	}
	return nil
}

func (s *Store) seedCategories(ctx context.Context) error {
	var count int
	if err := s.GetContext(ctx, &count, `SELECT count(*) FROM categories`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := s.insertCategories(ctx, seedCategories); err != nil {
		return err
	}

	s.log.Info("predefined categories seeded", zap.Int("count", len(seedCategories)))
	return nil
}

// insertCategories writes the whole set in one transaction; a single bad name
// rolls back every row already inserted.
func (s *Store) insertCategories(ctx context.Context, names []string) error {
	return s.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, name := range names {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO categories (name) VALUES (?)`, name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) seedContactTypes(ctx context.Context) error {
	var count int
	if err := s.GetContext(ctx, &count, `SELECT count(*) FROM supplier_contact_types`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, ct := range seedContactTypes {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO supplier_contact_types (id, name) VALUES (?, ?)`,
				ct.ID, ct.Name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("predefined contact types seeded", zap.Int("count", len(seedContactTypes)))
	return nil
}
