package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/internal/catalog"
	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/supplier"
	"github.com/storekeep/inventory-service/internal/supplier/dto"
)

var (
	ErrSupplierNotFound       = errors.New("supplier not found")
	ErrUnknownContactType     = errors.New("unknown contact type")
	ErrMultipleDefaultContact = errors.New("more than one default contact of the same type")
)

type supplierUseCase struct {
	repo supplier.Repository
	log  *zap.Logger
}

func NewSupplierUseCase(repo supplier.Repository, log *zap.Logger) supplier.UseCase {
	return &supplierUseCase{repo: repo, log: log}
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	sup, err := buildSupplier(input)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, sup); err != nil {
		return nil, err
	}

	uc.log.Info("supplier created",
		zap.Int64("id", sup.ID), zap.String("code", sup.Code), zap.String("name", sup.Name))
	return sup, nil
}

func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, input *dto.UpdateSupplierInput) (*model.Supplier, error) {
	existing, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSupplierNotFound
	}

	sup, err := buildSupplier(&input.CreateSupplierInput)
	if err != nil {
		return nil, err
	}
	sup.ID = input.ID

	if err := uc.repo.Update(ctx, sup); err != nil {
		return nil, err
	}

	uc.log.Info("supplier updated", zap.Int64("id", sup.ID), zap.String("code", sup.Code))
	return sup, nil
}

// buildSupplier validates the input. Contact types must be from the seeded
// set, and at most one contact per type may be flagged default so the
// short-info report's scalar sub-queries stay single valued.
func buildSupplier(input *dto.CreateSupplierInput) (*model.Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New("supplier name is required")
	}
	if strings.TrimSpace(input.Code) == "" {
		return nil, errors.New("supplier code is required")
	}

	defaultsPerType := map[int64]int{}
	for _, c := range input.Contacts {
		if c.ContactTypeID != model.ContactTypePhone && c.ContactTypeID != model.ContactTypeEmail {
			return nil, fmt.Errorf("%w: %d", ErrUnknownContactType, c.ContactTypeID)
		}
		if c.IsDefault {
			defaultsPerType[c.ContactTypeID]++
			if defaultsPerType[c.ContactTypeID] > 1 {
				return nil, ErrMultipleDefaultContact
			}
		}
	}

	sup := &model.Supplier{Name: name, Code: input.Code}
	for _, c := range input.Contacts {
		sup.Contacts = append(sup.Contacts, model.SupplierContact{
			ContactTypeID: c.ContactTypeID,
			Value:         c.Value,
			IsDefault:     c.IsDefault,
		})
	}
	return sup, nil
}

func (uc *supplierUseCase) DeleteSupplier(ctx context.Context, id int64) error {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSupplierNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, id int64) (*model.Supplier, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *supplierUseCase) GetSupplierByCode(ctx context.Context, code string) (*model.Supplier, error) {
	return uc.repo.FindByCode(ctx, code)
}

func (uc *supplierUseCase) GetSupplierItems(ctx context.Context, id int64) ([]catalog.SupplierItemRow, error) {
	return uc.repo.Items(ctx, id)
}

func (uc *supplierUseCase) ListSuppliersShortInfo(ctx context.Context) ([]catalog.SupplierShortInfoRow, error) {
	return uc.repo.ListShortInfo(ctx)
}
