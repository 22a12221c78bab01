package catalog

const (
	tableProducts      = "products"
	tableCategories    = "categories"
	tableImages        = "product_images"
	tableAttributes    = "product_attributes"
	tableSuppliers     = "suppliers"
	tableContactTypes  = "supplier_contact_types"
	tableContacts      = "supplier_contacts"
	tableSupplierInfo  = "product_supplier_info"
	tableSupplierStock = "product_supplier_inventory"
)

// Computed column aliases shared between specifications and row types.
const (
	colDefaultPhone      = "default_phone"
	colDefaultEmail      = "default_email"
	colItemCount         = "item_count"
	colSupplierAvailQty  = "supplier_available_quantity"
	colTotalAvailQty     = "total_available_quantity"
	defaultFlagged       = "1"
	contactTypePhoneID   = "0"
	contactTypeEmailID   = "1"
)

func qual(table, column string) string {
	return table + "." + column
}

// AttributesByItem lists the name/value attributes of one product.
func AttributesByItem() Spec {
	return Spec{
		name: "attributes_by_item",
		columns: []Column{
			{Expr: qual(tableAttributes, "item_id")},
			{Expr: qual(tableAttributes, "attr_name")},
			{Expr: qual(tableAttributes, "attr_value")},
		},
		from: tableProducts + " JOIN " + tableAttributes +
			" ON " + qual(tableAttributes, "item_id") + " = " + qual(tableProducts, "id"),
		where:  qual(tableProducts, "id") + " = ?",
		params: []string{"item_id"},
	}
}

// ImagesByItem lists the image URIs of one product, default flag included.
func ImagesByItem() Spec {
	return Spec{
		name: "images_by_item",
		columns: []Column{
			{Expr: qual(tableImages, "item_id")},
			{Expr: qual(tableImages, "image_uri")},
			{Expr: qual(tableImages, "is_default")},
		},
		from: tableProducts + " JOIN " + tableImages +
			" ON " + qual(tableImages, "item_id") + " = " + qual(tableProducts, "id"),
		where:  qual(tableProducts, "id") + " = ?",
		params: []string{"item_id"},
	}
}

// Categories lists every category, ordered by name; a full scan with no
// filter.
func Categories() Spec {
	return Spec{
		name: "categories",
		columns: []Column{
			{Expr: qual(tableCategories, "id")},
			{Expr: qual(tableCategories, "name")},
		},
		from:    tableCategories,
		orderBy: qual(tableCategories, "name"),
	}
}

// CategoryByName resolves a category by its unique name.
func CategoryByName() Spec {
	return Spec{
		name: "category_by_name",
		columns: []Column{
			{Expr: qual(tableCategories, "id")},
			{Expr: qual(tableCategories, "name")},
		},
		from:   tableCategories,
		where:  qual(tableCategories, "name") + " = ?",
		params: []string{"name"},
	}
}

// CategoryByID resolves a category by id.
func CategoryByID() Spec {
	return Spec{
		name: "category_by_id",
		columns: []Column{
			{Expr: qual(tableCategories, "id")},
			{Expr: qual(tableCategories, "name")},
		},
		from:   tableCategories,
		where:  qual(tableCategories, "id") + " = ?",
		params: []string{"id"},
	}
}

// ItemByID returns the full product detail of one item plus its category
// name. Products without a category are not matched by the inner join.
func ItemByID() Spec {
	return Spec{
		name: "item_by_id",
		columns: []Column{
			{Expr: qual(tableProducts, "id"), Alias: "item_id"},
			{Expr: qual(tableProducts, "name"), Alias: "item_name"},
			{Expr: qual(tableProducts, "sku"), Alias: "item_sku"},
			{Expr: qual(tableProducts, "description"), Alias: "item_description"},
			{Expr: qual(tableCategories, "name"), Alias: "category_name"},
		},
		from: tableProducts + " JOIN " + tableCategories +
			" ON " + qual(tableProducts, "category_id") + " = " + qual(tableCategories, "id"),
		where:  qual(tableProducts, "id") + " = ?",
		params: []string{"item_id"},
	}
}

// ItemsShortInfo is the product list view: one row per product with its
// category name and, when present, the URI of its default-flagged image.
// Products with no image rows at all still appear (null image) through the
// left join; products with images contribute exactly one row as long as at
// most one image is flagged default, the invariant the schema enforces
// with a partial unique index.
func ItemsShortInfo() Spec {
	return Spec{
		name: "items_short_info",
		columns: []Column{
			{Expr: qual(tableProducts, "id"), Alias: "item_id"},
			{Expr: qual(tableProducts, "name"), Alias: "item_name"},
			{Expr: qual(tableProducts, "sku"), Alias: "item_sku"},
			{Expr: qual(tableCategories, "name"), Alias: "category_name"},
			{Expr: qual(tableImages, "image_uri")},
		},
		from: tableProducts + " JOIN " + tableCategories +
			" ON " + qual(tableProducts, "category_id") + " = " + qual(tableCategories, "id") +
			" LEFT JOIN " + tableImages +
			" ON " + qual(tableImages, "item_id") + " = " + qual(tableProducts, "id"),
		where: qual(tableImages, "is_default") + " IS NULL OR " +
			qual(tableImages, "is_default") + " = ?",
		params: []string{"default_flag"},
	}
}

// ItemBySKU resolves a product by its unique SKU.
func ItemBySKU() Spec {
	return Spec{
		name: "item_by_sku",
		columns: []Column{
			{Expr: qual(tableProducts, "id")},
			{Expr: qual(tableProducts, "name")},
			{Expr: qual(tableProducts, "sku")},
		},
		from:   tableProducts,
		where:  qual(tableProducts, "sku") + " = ?",
		params: []string{"sku"},
	}
}

// SupplierByID resolves a supplier by id.
func SupplierByID() Spec {
	return Spec{
		name: "supplier_by_id",
		columns: []Column{
			{Expr: qual(tableSuppliers, "id")},
			{Expr: qual(tableSuppliers, "name")},
			{Expr: qual(tableSuppliers, "code")},
		},
		from:   tableSuppliers,
		where:  qual(tableSuppliers, "id") + " = ?",
		params: []string{"supplier_id"},
	}
}

// SupplierByCode resolves a supplier by its unique code.
func SupplierByCode() Spec {
	return Spec{
		name: "supplier_by_code",
		columns: []Column{
			{Expr: qual(tableSuppliers, "id")},
			{Expr: qual(tableSuppliers, "name")},
			{Expr: qual(tableSuppliers, "code")},
		},
		from:   tableSuppliers,
		where:  qual(tableSuppliers, "code") + " = ?",
		params: []string{"code"},
	}
}

// SupplierContacts lists the contacts of one supplier.
func SupplierContacts() Spec {
	return Spec{
		name: "supplier_contacts",
		columns: []Column{
			{Expr: qual(tableSuppliers, "id"), Alias: "supplier_id"},
			{Expr: qual(tableContacts, "contact_type_id")},
			{Expr: qual(tableContacts, "contact_value")},
			{Expr: qual(tableContacts, "is_default")},
		},
		from: tableSuppliers + " JOIN " + tableContacts +
			" ON " + qual(tableContacts, "supplier_id") + " = " + qual(tableSuppliers, "id"),
		where:  qual(tableSuppliers, "id") + " = ?",
		params: []string{"supplier_id"},
	}
}

// SupplierItems lists the products a supplier sells with their unit price.
func SupplierItems() Spec {
	return Spec{
		name: "supplier_items",
		columns: []Column{
			{Expr: qual(tableSupplierInfo, "supplier_id")},
			{Expr: qual(tableSupplierInfo, "item_id")},
			{Expr: qual(tableSupplierInfo, "unit_price")},
		},
		from:   tableSupplierInfo,
		where:  qual(tableSupplierInfo, "supplier_id") + " = ?",
		params: []string{"supplier_id"},
	}
}

// ItemSuppliers lists the suppliers selling a product; the symmetric query
// over the same junction table as SupplierItems.
func ItemSuppliers() Spec {
	return Spec{
		name: "item_suppliers",
		columns: []Column{
			{Expr: qual(tableSupplierInfo, "supplier_id")},
			{Expr: qual(tableSupplierInfo, "item_id")},
			{Expr: qual(tableSupplierInfo, "unit_price")},
		},
		from:   tableSupplierInfo,
		where:  qual(tableSupplierInfo, "item_id") + " = ?",
		params: []string{"item_id"},
	}
}

// defaultContactSubquery builds the correlated scalar sub-query projecting a
// supplier's default-flagged contact value of the given type. Correlated on
// the outer suppliers.id; the partial unique index on default contacts
// guarantees at most one row.
func defaultContactSubquery(contactTypeID string) Spec {
	return Spec{
		name: "default_contact",
		columns: []Column{
			{Expr: qual(tableContacts, "contact_value")},
		},
		from: tableContacts + " JOIN " + tableContactTypes +
			" ON " + qual(tableContacts, "contact_type_id") + " = " + qual(tableContactTypes, "id"),
		where: qual(tableContacts, "supplier_id") + " = " + qual(tableSuppliers, "id") +
			" AND " + qual(tableContactTypes, "id") + " = " + contactTypeID +
			" AND " + qual(tableContacts, "is_default") + " = " + defaultFlagged,
	}
}

// itemCountSubquery counts the products a supplier sells, correlated on the
// outer suppliers.id.
func itemCountSubquery() Spec {
	return Spec{
		name: "item_count",
		columns: []Column{
			{Expr: "count(" + qual(tableProducts, "id") + ")", Alias: colItemCount},
		},
		from: tableProducts + " JOIN " + tableSupplierInfo +
			" ON " + qual(tableSupplierInfo, "item_id") + " = " + qual(tableProducts, "id"),
		where: qual(tableSupplierInfo, "supplier_id") + " = " + qual(tableSuppliers, "id"),
	}
}

// SuppliersShortInfo is the supplier list view: identity plus three computed
// columns, the default phone, the default email and the number of products
// the supplier sells.
func SuppliersShortInfo() Spec {
	return Spec{
		name: "suppliers_short_info",
		columns: []Column{
			{Expr: qual(tableSuppliers, "id"), Alias: "supplier_id"},
			{Expr: qual(tableSuppliers, "name"), Alias: "supplier_name"},
			{Expr: qual(tableSuppliers, "code"), Alias: "supplier_code"},
			{Expr: defaultContactSubquery(contactTypePhoneID).subquery(), Alias: colDefaultPhone},
			{Expr: defaultContactSubquery(contactTypeEmailID).subquery(), Alias: colDefaultEmail},
			{Expr: itemCountSubquery().subquery(), Alias: colItemCount},
		},
		from: tableSuppliers,
	}
}

// totalQuantitySubquery sums the available quantity across every supplier of
// the outer row's product. The unqualified inner table shadows the outer
// reference of the same name; products.id still binds to the outer query.
func totalQuantitySubquery() Spec {
	return Spec{
		name: "total_available_quantity",
		columns: []Column{
			{Expr: "sum(available_quantity)", Alias: colTotalAvailQty},
		},
		from:  tableSupplierStock,
		where: qual(tableSupplierStock, "item_id") + " = " + qual(tableProducts, "id"),
	}
}

// topSupplierSubquery selects the supplier holding the highest available
// quantity of the outer row's product. Equal quantities break to the lowest
// supplier id so the choice is deterministic rather than an artifact of row
// order.
func topSupplierSubquery() Spec {
	return Spec{
		name: "top_supplier",
		columns: []Column{
			{Expr: qual(tableSuppliers, "id")},
		},
		from: tableSuppliers + " JOIN " + tableSupplierStock +
			" ON " + qual(tableSupplierStock, "supplier_id") + " = " + qual(tableSuppliers, "id"),
		where: qual(tableSupplierStock, "item_id") + " = " + qual(tableProducts, "id"),
		orderBy: qual(tableSupplierStock, "available_quantity") + " DESC, " +
			qual(tableSuppliers, "id") + " ASC",
		limit: "1",
	}
}

// SalesShortInfo is the sales list view: for every product, exactly one
// supplier row (the supplier with the most stock of that product) joined
// with the product's category, optional default image, that supplier's unit
// price and quantity, and a rollup of quantity across all suppliers.
func SalesShortInfo() Spec {
	return Spec{
		name: "sales_short_info",
		columns: []Column{
			{Expr: qual(tableSupplierStock, "item_id")},
			{Expr: qual(tableSupplierStock, "supplier_id")},
			{Expr: qual(tableProducts, "name"), Alias: "item_name"},
			{Expr: qual(tableProducts, "sku"), Alias: "item_sku"},
			{Expr: qual(tableCategories, "name"), Alias: "category_name"},
			{Expr: qual(tableImages, "image_uri")},
			{Expr: qual(tableSuppliers, "name"), Alias: "supplier_name"},
			{Expr: qual(tableSuppliers, "code"), Alias: "supplier_code"},
			{Expr: qual(tableSupplierInfo, "unit_price")},
			{Expr: qual(tableSupplierStock, "available_quantity"), Alias: colSupplierAvailQty},
			{Expr: totalQuantitySubquery().subquery(), Alias: colTotalAvailQty},
		},
		from: tableProducts + " JOIN " + tableCategories +
			" ON " + qual(tableProducts, "category_id") + " = " + qual(tableCategories, "id") +
			" LEFT JOIN " + tableImages +
			" ON " + qual(tableImages, "item_id") + " = " + qual(tableProducts, "id") +
			" JOIN " + tableSupplierInfo +
			" ON " + qual(tableSupplierInfo, "item_id") + " = " + qual(tableProducts, "id") +
			" JOIN " + tableSupplierStock +
			" ON " + qual(tableSupplierStock, "item_id") + " = " + qual(tableProducts, "id") +
			" JOIN " + tableSuppliers +
			" ON " + qual(tableSuppliers, "id") + " = " + qual(tableSupplierStock, "supplier_id"),
		where: "(" + qual(tableImages, "is_default") + " IS NULL OR " +
			qual(tableImages, "is_default") + " = ?)" +
			" AND " + qual(tableSupplierStock, "supplier_id") + " = " + topSupplierSubquery().subquery() +
			" AND " + qual(tableSupplierInfo, "supplier_id") + " = " + qual(tableSupplierStock, "supplier_id"),
		params: []string{"default_flag"},
	}
}

// ItemSuppliersSales is the unaggregated sibling of SalesShortInfo: every
// supplier selling one product, with its price and available quantity.
func ItemSuppliersSales() Spec {
	return Spec{
		name: "item_suppliers_sales",
		columns: []Column{
			{Expr: qual(tableSupplierInfo, "item_id")},
			{Expr: qual(tableSupplierInfo, "supplier_id")},
			{Expr: qual(tableSuppliers, "name"), Alias: "supplier_name"},
			{Expr: qual(tableSuppliers, "code"), Alias: "supplier_code"},
			{Expr: qual(tableSupplierInfo, "unit_price")},
			{Expr: qual(tableSupplierStock, "available_quantity")},
		},
		from: tableSuppliers + " JOIN " + tableSupplierInfo +
			" ON " + qual(tableSupplierInfo, "supplier_id") + " = " + qual(tableSuppliers, "id") +
			" JOIN " + tableSupplierStock +
			" ON " + qual(tableSupplierStock, "supplier_id") + " = " + qual(tableSupplierInfo, "supplier_id"),
		where: qual(tableSupplierStock, "item_id") + " = " + qual(tableSupplierInfo, "item_id") +
			" AND " + qual(tableSupplierInfo, "item_id") + " = ?",
		params: []string{"item_id"},
	}
}

// DefaultFlagArg is the positional argument bound to the default_flag
// parameter of ItemsShortInfo and SalesShortInfo.
const DefaultFlagArg = 1
