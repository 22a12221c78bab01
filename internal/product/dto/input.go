package dto

import "github.com/storekeep/inventory-service/internal/catalog"

type ImageInput struct {
	URI       string `json:"uri"`
	IsDefault bool   `json:"is_default"`
}

type AttributeInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type CreateItemInput struct {
	Name         string           `json:"name"`
	SKU          string           `json:"sku"`
	Description  string           `json:"description"`
	CategoryName string           `json:"category_name"`
	Images       []ImageInput     `json:"images"`
	Attributes   []AttributeInput `json:"attributes"`
}

type UpdateItemInput struct {
	ID int64 `json:"id"`
	CreateItemInput
}

// ItemDetails is the full read model of one product: the detail projection
// plus its image and attribute children.
type ItemDetails struct {
	catalog.ItemDetailRow
	Images     []catalog.ImageRow     `json:"images"`
	Attributes []catalog.AttributeRow `json:"attributes"`
}
