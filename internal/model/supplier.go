package model

// Contact type ids are fixed reference data seeded at schema creation.
const (
	ContactTypePhone int64 = 0
	ContactTypeEmail int64 = 1
)

type Supplier struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Code string `db:"code" json:"code"`

	Contacts []SupplierContact `db:"-" json:"contacts"`
}

type SupplierContactType struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type SupplierContact struct {
	SupplierID    int64  `db:"supplier_id" json:"supplier_id"`
	ContactTypeID int64  `db:"contact_type_id" json:"contact_type_id"`
	Value         string `db:"contact_value" json:"value"`
	IsDefault     bool   `db:"is_default" json:"is_default"`
}
