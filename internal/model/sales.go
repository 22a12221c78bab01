package model

// ProductSupplierInfo is the per-supplier selling price of a product.
type ProductSupplierInfo struct {
	ItemID     int64   `db:"item_id" json:"item_id"`
	SupplierID int64   `db:"supplier_id" json:"supplier_id"`
	UnitPrice  float64 `db:"unit_price" json:"unit_price"`
}

// ProductSupplierInventory is the per-supplier stock of a product.
type ProductSupplierInventory struct {
	ItemID            int64 `db:"item_id" json:"item_id"`
	SupplierID        int64 `db:"supplier_id" json:"supplier_id"`
	AvailableQuantity int64 `db:"available_quantity" json:"available_quantity"`
}
