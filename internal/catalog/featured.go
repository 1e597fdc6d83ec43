package catalog

import "github.com/iyhunko/product-showcase/internal/model"

// Featured returns the products shown on the featured products page.
func Featured() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Sony WH-1000XM5",
			Category:    "Audio",
			Price:       29990,
			Description: "Industry-leading noise canceling with two processors controlling 8 microphones for unprecedented noise cancellation.",
			InStock:     true,
			Rating:      5,
			Image:       "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?auto=format&fit=crop&q=80&w=1000",
		},
		{
			ID:          2,
			Name:        "MacBook Air M2",
			Category:    "Laptops",
			Price:       99900,
			Description: "Strikingly thin design. High-resolution Liquid Retina display. Supercharged by M2.",
			InStock:     false,
			Rating:      5,
			Image:       "https://images.unsplash.com/photo-1611186871348-b1ce696e52c9?auto=format&fit=crop&q=80&w=1000",
		},
		{
			ID:          3,
			Name:        "Mechanical Keyboard",
			Category:    "Accessories",
			Price:       7499,
			Description: "RGB backlit mechanical gaming keyboard with blue switches and compact design.",
			InStock:     true,
			Rating:      4,
			Image:       "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?auto=format&fit=crop&q=80&w=1000",
		},
	}
}
