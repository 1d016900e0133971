// Package catalog supplies the static, read-only product data the storefront
// is seeded with at startup. There is no external source and no refresh.
package catalog

import "github.com/luminashop/storefront/internal/core/domain"

// Products returns the demo catalog. Callers receive a fresh slice so the
// underlying data cannot be mutated.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "Sony WH-1000XM5",
			Price:       1499.00,
			Category:    "Audio",
			Image:       "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?auto=format&fit=crop&w=500&q=80",
			Rating:      4.8,
			Reviews:     120,
			Description: "Wiodąca w branży redukcja hałasu i doskonała jakość dźwięku.",
		},
		{
			ID:          2,
			Name:        "MacBook Air M2",
			Price:       5999.00,
			Category:    "Laptopy",
			Image:       "https://images.unsplash.com/photo-1659135890064-d57187f0946c?q=80&w=1470&auto=format&fit=crop",
			Rating:      4.9,
			Reviews:     85,
			Description: "Niesamowicie smukły design i nowa generacja wydajności z procesorem M2.",
		},
		{
			ID:          3,
			Name:        "iPhone 15 Pro",
			Price:       5299.00,
			Category:    "Smartfony",
			Image:       "https://images.unsplash.com/photo-1710023038502-ba80a70a9f53?q=80&w=764&auto=format&fit=crop",
			Rating:      4.7,
			Reviews:     230,
			Description: "Tytanowa konstrukcja. Czip A17 Pro. Nowy przycisk czynności.",
		},
		{
			ID:          4,
			Name:        "Herman Miller Aeron",
			Price:       6500.00,
			Category:    "Biuro",
			Image:       "https://images.unsplash.com/photo-1505843490538-5133c6c7d0e1?auto=format&fit=crop&w=500&q=80",
			Rating:      5.0,
			Reviews:     40,
			Description: "Ikona designu biurowego. Ergonomia na najwyższym poziomie.",
		},
		{
			ID:          5,
			Name:        "Canon EOS R6",
			Price:       10500.00,
			Category:    "Foto",
			Image:       "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&w=500&q=80",
			Rating:      4.9,
			Reviews:     65,
			Description: "Szybkość, jakiej potrzebujesz, by uchwycić decydujący moment.",
		},
		{
			ID:          6,
			Name:        "Mechanical Keyboard",
			Price:       450.00,
			Category:    "Akcesoria",
			Image:       "https://images.unsplash.com/photo-1595225476474-87563907a212?auto=format&fit=crop&w=500&q=80",
			Rating:      4.6,
			Reviews:     112,
			Description: "Przełączniki Cherry MX Brown, podświetlenie RGB i aluminiowa obudowa.",
		},
	}
}
