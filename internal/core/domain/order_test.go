package domain

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderPending, OrderApproved},
		{OrderPending, OrderCancelled},
		{OrderApproved, OrderPreparing},
		{OrderApproved, OrderCancelled},
		{OrderPreparing, OrderShipped},
		{OrderShipped, OrderDelivered},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to OrderStatus }{
		{OrderPending, OrderShipped},
		{OrderPreparing, OrderCancelled},
		{OrderShipped, OrderCancelled},
		{OrderDelivered, OrderPending},
		{OrderCancelled, OrderApproved},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestCartItemCount(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		{ID: 1, Quantity: 5},
		{ID: 2, Quantity: 3},
	}}
	// Distinct lines, not quantity sum.
	if got := cart.ItemCount(); got != 2 {
		t.Fatalf("ItemCount = %d, want 2", got)
	}

	var nilCart *Cart
	if got := nilCart.ItemCount(); got != 0 {
		t.Fatalf("nil cart ItemCount = %d, want 0", got)
	}
}
