package model

// StockStatus represents the availability of a product.
type StockStatus string

const (
	// StockStatusInStock indicates the product can be added to the cart
	StockStatusInStock StockStatus = "in_stock"
	// StockStatusOutOfStock indicates the product is sold out
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// StockStatusOf maps the raw in-stock flag to its variant.
func StockStatusOf(inStock bool) StockStatus {
	if inStock {
		return StockStatusInStock
	}
	return StockStatusOutOfStock
}

// String returns the string representation of the stock status.
func (s StockStatus) String() string {
	return string(s)
}
