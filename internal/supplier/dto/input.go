package dto

type ContactInput struct {
	ContactTypeID int64  `json:"contact_type_id"`
	Value         string `json:"value"`
	IsDefault     bool   `json:"is_default"`
}

type CreateSupplierInput struct {
	Name     string         `json:"name"`
	Code     string         `json:"code"`
	Contacts []ContactInput `json:"contacts"`
}

type UpdateSupplierInput struct {
	ID int64 `json:"id"`
	CreateSupplierInput
}
