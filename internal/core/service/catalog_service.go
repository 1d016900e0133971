package service

import (
	"strings"

	"github.com/luminashop/storefront/internal/core/domain"
	"github.com/luminashop/storefront/internal/core/ports"
)

// CatalogService serves the static product catalog with search and category
// filtering. The catalog never mutates after construction.
type CatalogService struct {
	products []domain.Product
}

func NewCatalogService(products []domain.Product) *CatalogService {
	return &CatalogService{products: products}
}

// List returns the products matching both filters. The search term matches
// case-insensitively against the product name; the category must match
// exactly unless it is empty or the all-categories sentinel.
func (s *CatalogService) List(input ports.ListProductsInput) []domain.Product {
	search := strings.ToLower(input.Search)
	filterCategory := input.Category != "" && input.Category != domain.CategoryAll

	matched := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filterCategory && p.Category != input.Category {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Get returns the product with the given id.
func (s *CatalogService) Get(id int) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// Categories returns the sentinel followed by the distinct categories in
// catalog order.
func (s *CatalogService) Categories() []string {
	categories := []string{domain.CategoryAll}
	seen := make(map[string]bool)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
