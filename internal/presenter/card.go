// Package presenter derives the presentation-ready form of a product card.
// Every function here is total: out-of-range ratings and negative prices are
// rendered as-is.
package presenter

import (
	"fmt"

	"github.com/iyhunko/product-showcase/internal/model"
)

// StarCount is the number of star glyphs every card renders.
const StarCount = 5

// BadgeStyle is the visual style of the stock badge.
type BadgeStyle string

const (
	BadgeSuccess BadgeStyle = "success"
	BadgeDanger  BadgeStyle = "danger"
)

// ButtonState describes the add-to-cart button.
type ButtonState struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

// Disabled reports whether the button must not be clickable.
func (b ButtonState) Disabled() bool {
	return !b.Enabled
}

type stockVariant struct {
	label  string
	badge  BadgeStyle
	button ButtonState
}

var stockVariants = map[model.StockStatus]stockVariant{
	model.StockStatusInStock: {
		label:  "In Stock",
		badge:  BadgeSuccess,
		button: ButtonState{Enabled: true, Label: "Add to Cart"},
	},
	model.StockStatusOutOfStock: {
		label:  "Out of Stock",
		badge:  BadgeDanger,
		button: ButtonState{Enabled: false, Label: "Sold Out"},
	},
}

// CardView is the rendered state of a single product card.
type CardView struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Stock          model.StockStatus `json:"stock"`
	StockLabel     string            `json:"stock_label"`
	Badge          BadgeStyle        `json:"badge"`
	Stars          [StarCount]bool   `json:"stars"`
	RatingText     string            `json:"rating_text"`
	FormattedPrice string            `json:"formatted_price"`
	Button         ButtonState       `json:"button"`
	Image          ImageSource       `json:"image"`
}

// Present maps a product to its card view. It never fails.
func Present(p model.Product) CardView {
	stock := p.Stock()
	variant := stockVariants[stock]

	return CardView{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Description:    p.Description,
		Stock:          stock,
		StockLabel:     variant.label,
		Badge:          variant.badge,
		Stars:          FilledStars(p.Rating),
		RatingText:     RatingText(p.Rating),
		FormattedPrice: FormatPrice(p.Price),
		Button:         variant.button,
		Image:          NewImageSource(p.Image),
	}
}

// FilledStars marks star i as filled when i < rating. The rating is not clamped.
func FilledStars(rating int) [StarCount]bool {
	var stars [StarCount]bool
	for i := range stars {
		stars[i] = i < rating
	}
	return stars
}

// RatingText returns the numeric suffix shown next to the stars, e.g. "(4.0)".
func RatingText(rating int) string {
	return fmt.Sprintf("(%d.0)", rating)
}
