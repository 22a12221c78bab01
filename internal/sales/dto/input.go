package dto

// LinkInput associates a supplier with an item, setting the supplier's
// selling price and initial available stock in one call.
type LinkInput struct {
	ItemID            int64   `json:"item_id"`
	SupplierID        int64   `json:"supplier_id"`
	UnitPrice         float64 `json:"unit_price"`
	AvailableQuantity int64   `json:"available_quantity"`
}

// StockMovementInput is one sell or procure movement of a positive quantity
// against a single (item, supplier) stock row.
type StockMovementInput struct {
	ItemID     int64 `json:"item_id"`
	SupplierID int64 `json:"supplier_id"`
	Quantity   int64 `json:"quantity"`
}
