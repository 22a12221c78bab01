package model

type Product struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	SKU         string `db:"sku" json:"sku"`
	Description string `db:"description" json:"description"`
	CategoryID  *int64 `db:"category_id" json:"category_id"` // Nullable

	Images     []ProductImage     `db:"-" json:"images"`
	Attributes []ProductAttribute `db:"-" json:"attributes"`
}

type ProductImage struct {
	ItemID    int64  `db:"item_id" json:"item_id"`
	ImageURI  string `db:"image_uri" json:"image_uri"`
	IsDefault bool   `db:"is_default" json:"is_default"`
}

type ProductAttribute struct {
	ItemID int64  `db:"item_id" json:"item_id"`
	Name   string `db:"attr_name" json:"name"`
	Value  string `db:"attr_value" json:"value"`
}
