package model

// Product represents a catalog entry shown on the showcase page.
// The validate tags describe the nominal contract; they are only enforced
// when the catalog is built with strict validation.
type Product struct {
	ID          int    `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Description string `json:"description"`
	InStock     bool   `json:"in_stock"`
	Rating      int    `json:"rating" validate:"min=0,max=5"`
	Image       string `json:"image" validate:"omitempty,url"`
}

// Stock returns the stock variant of the product.
func (p Product) Stock() StockStatus {
	return StockStatusOf(p.InStock)
}
