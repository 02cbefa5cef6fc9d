package models

// CartLine is one (product, size) entry in a cart. It snapshots the
// product's name, price and primary image at add-time so the cart keeps
// rendering even if the catalog entry is later edited or removed.
type CartLine struct {
	CartID       string  `json:"cartId"`
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	SelectedSize string  `json:"selectedSize"`
	Quantity     int     `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l *CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
