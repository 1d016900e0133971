package domain

// CategoryAll is the sentinel category meaning "no category filter".
// It matches the value the storefront catalog ships with.
const CategoryAll = "Wszystkie"

// Product is an immutable catalog entry. Products are shared read-only
// reference data; everything else in the session references them by ID.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Description string  `json:"description"`
}
