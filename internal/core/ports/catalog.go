package ports

import "github.com/luminashop/storefront/internal/core/domain"

// ListProductsInput carries the two composable catalog filters. Both apply
// conjunctively; zero values mean "no filter".
type ListProductsInput struct {
	// Search is matched case-insensitively as a substring of the product name.
	Search string
	// Category must match exactly; empty or domain.CategoryAll disables it.
	Category string
}

// CatalogService exposes the read-only product catalog.
type CatalogService interface {
	List(input ListProductsInput) []domain.Product
	Get(id int) (*domain.Product, error)
	// Categories returns the distinct categories present in the catalog, in
	// catalog order, with the all-categories sentinel prepended.
	Categories() []string
}
