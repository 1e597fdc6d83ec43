// Package catalog holds the immutable list of products rendered by the page.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/iyhunko/product-showcase/internal/model"
)

var (
	// ErrDuplicateID is returned when two products share the same id.
	ErrDuplicateID = errors.New("duplicate product id")

	// ErrInvalidProduct is returned by strict validation for products outside the nominal contract.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrUnknownPolicy is returned when a validation policy name cannot be parsed.
	ErrUnknownPolicy = errors.New("unknown validation policy")
)

// ValidationPolicy controls how out-of-contract products are treated.
type ValidationPolicy string

const (
	// Lenient keeps every product as-is and logs a warning for each violation.
	Lenient ValidationPolicy = "lenient"
	// Strict rejects the catalog on the first product that violates the contract.
	Strict ValidationPolicy = "strict"
)

// ParseValidationPolicy converts a configuration value into a policy.
// An empty value selects Lenient.
func ParseValidationPolicy(v string) (ValidationPolicy, error) {
	switch ValidationPolicy(v) {
	case "", Lenient:
		return Lenient, nil
	case Strict:
		return Strict, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, v)
	}
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithValidation sets the validation policy used during construction.
func WithValidation(policy ValidationPolicy) Option {
	return func(c *Catalog) {
		c.policy = policy
	}
}

// Catalog is a fixed, ordered list of products. It is never mutated after New returns.
type Catalog struct {
	products []model.Product
	policy   ValidationPolicy
	validate *validator.Validate
}

// New builds a catalog from products, preserving their order.
func New(products []model.Product, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		policy:   Lenient,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}

	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}

		if err := c.check(p); err != nil {
			return nil, err
		}
	}

	c.products = make([]model.Product, len(products))
	copy(c.products, products)
	return c, nil
}

func (c *Catalog) check(p model.Product) error {
	err := c.validate.Struct(p)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validating product %d: %w", p.ID, err)
	}

	if c.policy == Strict {
		return fmt.Errorf("%w: product %d: %w", ErrInvalidProduct, p.ID, validationErrors)
	}

	for _, fe := range validationErrors {
		slog.Warn("product outside nominal contract, rendering as-is",
			slog.Int("product_id", p.ID),
			slog.String("field", fe.Field()),
			slog.String("rule", fe.Tag()),
			slog.Any("value", fe.Value()),
		)
	}
	return nil
}

// Products returns a copy of the products in catalog order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Policy returns the validation policy the catalog was built with.
func (c *Catalog) Policy() ValidationPolicy {
	return c.policy
}
