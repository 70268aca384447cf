package domain

// CartItem is one line in the remote cart.
type CartItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Currency  string  `json:"currency"`
}

// Cart mirrors the remote cart contents.
type Cart struct {
	Items []CartItem `json:"items"`
}

// ItemCount is the number of distinct lines, not the quantity sum. The
// navigation badge displays this figure.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}
