package catalog

// Result row types, one per specification shape. Field tags follow the
// column names (or aliases) the projections emit. Pointer fields carry
// columns that can legitimately be NULL: left-joined images and the
// correlated contact sub-queries.

type AttributeRow struct {
	ItemID int64  `db:"item_id" json:"item_id"`
	Name   string `db:"attr_name" json:"name"`
	Value  string `db:"attr_value" json:"value"`
}

type ImageRow struct {
	ItemID    int64  `db:"item_id" json:"item_id"`
	ImageURI  string `db:"image_uri" json:"image_uri"`
	IsDefault bool   `db:"is_default" json:"is_default"`
}

type CategoryRow struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type ItemDetailRow struct {
	ItemID          int64  `db:"item_id" json:"item_id"`
	ItemName        string `db:"item_name" json:"item_name"`
	ItemSKU         string `db:"item_sku" json:"item_sku"`
	ItemDescription string `db:"item_description" json:"item_description"`
	CategoryName    string `db:"category_name" json:"category_name"`
}

type ItemShortInfoRow struct {
	ItemID       int64   `db:"item_id" json:"item_id"`
	ItemName     string  `db:"item_name" json:"item_name"`
	ItemSKU      string  `db:"item_sku" json:"item_sku"`
	CategoryName string  `db:"category_name" json:"category_name"`
	ImageURI     *string `db:"image_uri" json:"image_uri"`
}

type ItemRefRow struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	SKU  string `db:"sku" json:"sku"`
}

type SupplierRow struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Code string `db:"code" json:"code"`
}

type SupplierContactRow struct {
	SupplierID    int64  `db:"supplier_id" json:"supplier_id"`
	ContactTypeID int64  `db:"contact_type_id" json:"contact_type_id"`
	Value         string `db:"contact_value" json:"value"`
	IsDefault     bool   `db:"is_default" json:"is_default"`
}

type SupplierItemRow struct {
	SupplierID int64   `db:"supplier_id" json:"supplier_id"`
	ItemID     int64   `db:"item_id" json:"item_id"`
	UnitPrice  float64 `db:"unit_price" json:"unit_price"`
}

type SupplierShortInfoRow struct {
	SupplierID   int64   `db:"supplier_id" json:"supplier_id"`
	SupplierName string  `db:"supplier_name" json:"supplier_name"`
	SupplierCode string  `db:"supplier_code" json:"supplier_code"`
	DefaultPhone *string `db:"default_phone" json:"default_phone"`
	DefaultEmail *string `db:"default_email" json:"default_email"`
	ItemCount    int64   `db:"item_count" json:"item_count"`
}

type SaleShortInfoRow struct {
	ItemID           int64   `db:"item_id" json:"item_id"`
	SupplierID       int64   `db:"supplier_id" json:"supplier_id"`
	ItemName         string  `db:"item_name" json:"item_name"`
	ItemSKU          string  `db:"item_sku" json:"item_sku"`
	CategoryName     string  `db:"category_name" json:"category_name"`
	ImageURI         *string `db:"image_uri" json:"image_uri"`
	SupplierName     string  `db:"supplier_name" json:"supplier_name"`
	SupplierCode     string  `db:"supplier_code" json:"supplier_code"`
	UnitPrice        float64 `db:"unit_price" json:"unit_price"`
	SupplierQuantity int64   `db:"supplier_available_quantity" json:"supplier_available_quantity"`
	TotalQuantity    int64   `db:"total_available_quantity" json:"total_available_quantity"`
}

type ItemSupplierSaleRow struct {
	ItemID            int64   `db:"item_id" json:"item_id"`
	SupplierID        int64   `db:"supplier_id" json:"supplier_id"`
	SupplierName      string  `db:"supplier_name" json:"supplier_name"`
	SupplierCode      string  `db:"supplier_code" json:"supplier_code"`
	UnitPrice         float64 `db:"unit_price" json:"unit_price"`
	AvailableQuantity int64   `db:"available_quantity" json:"available_quantity"`
}
