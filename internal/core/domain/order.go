package domain

import (
	"time"
)

// OrderStatus represents the lifecycle state of a dealer order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderPreparing OrderStatus = "preparing"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderApproved, OrderCancelled},
	OrderApproved:  {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderShipped},
	OrderShipped:   {OrderDelivered},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderLine is a single product position within an order.
type OrderLine struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// Order is a dealer order as returned by the platform.
type Order struct {
	ID           int64       `json:"id"`
	Number       string      `json:"orderNumber"`
	StoreID      int64       `json:"storeId"`
	Status       OrderStatus `json:"status"`
	Lines        []OrderLine `json:"items"`
	Total        float64     `json:"total"`
	Currency     string      `json:"currency"`
	Installments int         `json:"installments"`
	AddressID    int64       `json:"addressId"`
	Note         string      `json:"note,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// CargoReceipt is the printable shipping receipt for an order.
type CargoReceipt struct {
	OrderID     int64     `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Carrier     string    `json:"carrier"`
	TrackingNo  string    `json:"trackingNo"`
	Recipient   string    `json:"recipient"`
	Address     string    `json:"address"`
	IssuedAt    time.Time `json:"issuedAt"`
}

// QRLabel is one fulfillment label generated for an order package.
type QRLabel struct {
	Code        string `json:"code"`
	OrderID     int64  `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	PackageNo   int    `json:"packageNo"`
	ImageURL    string `json:"imageUrl"`
	Scanned     bool   `json:"scanned"`
}
