package usecase

import (
	"errors"
	"testing"

	"github.com/storekeep/inventory-service/internal/model"
	"github.com/storekeep/inventory-service/internal/supplier/dto"
)

func TestBuildSupplierValidatesContacts(t *testing.T) {
	_, err := buildSupplier(&dto.CreateSupplierInput{
		Name: "Acme", Code: "ACM",
		Contacts: []dto.ContactInput{{ContactTypeID: 7, Value: "x"}},
	})
	if !errors.Is(err, ErrUnknownContactType) {
		t.Fatalf("expected ErrUnknownContactType, got %v", err)
	}

	_, err = buildSupplier(&dto.CreateSupplierInput{
		Name: "Acme", Code: "ACM",
		Contacts: []dto.ContactInput{
			{ContactTypeID: model.ContactTypePhone, Value: "a", IsDefault: true},
			{ContactTypeID: model.ContactTypePhone, Value: "b", IsDefault: true},
		},
	})
	if !errors.Is(err, ErrMultipleDefaultContact) {
		t.Fatalf("expected ErrMultipleDefaultContact, got %v", err)
	}

	// One default per type is fine, even across both types.
	sup, err := buildSupplier(&dto.CreateSupplierInput{
		Name: "Acme", Code: "ACM",
		Contacts: []dto.ContactInput{
			{ContactTypeID: model.ContactTypePhone, Value: "+1 555 0100", IsDefault: true},
			{ContactTypeID: model.ContactTypeEmail, Value: "a@acme.test", IsDefault: true},
			{ContactTypeID: model.ContactTypeEmail, Value: "b@acme.test"},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(sup.Contacts) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(sup.Contacts))
	}
}

func TestBuildSupplierRequiresNameAndCode(t *testing.T) {
	if _, err := buildSupplier(&dto.CreateSupplierInput{Code: "C"}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := buildSupplier(&dto.CreateSupplierInput{Name: "N", Code: " "}); err == nil {
		t.Fatal("expected error for blank code")
	}
}
