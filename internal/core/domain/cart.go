package domain

// CartLine pairs a product with a quantity. A cart holds at most one line per
// product ID; adding the same product again increments the quantity instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price × quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// CartTotal sums the subtotals of all lines. It is recomputed from the live
// cart on every use rather than cached, so concurrent cart edits made while a
// checkout is open are always reflected.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

// CartCount returns the total number of units across all lines.
func CartCount(lines []CartLine) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
