package domain

import "time"

// Product is a catalog entry.
type Product struct {
	ID            int64   `json:"id"`
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	CollectionID  int64   `json:"collectionId"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	StockQuantity int     `json:"stockQuantity"`
	IsActive      bool    `json:"isActive"`
}

// Collection groups products for browsing.
type Collection struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PriceList is a named price schedule assignable to stores.
type PriceList struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Currency  string          `json:"currency"`
	ValidFrom time.Time       `json:"validFrom"`
	ValidTo   time.Time       `json:"validTo"`
	Items     []PriceListItem `json:"items,omitempty"`
}

// PriceListItem prices one product within a price list.
type PriceListItem struct {
	ProductID int64   `json:"productId"`
	SKU       string  `json:"sku"`
	Price     float64 `json:"price"`
}

// StockAdjustment records a manual stock change applied by staff.
type StockAdjustment struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Delta     int       `json:"delta"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardStats is the admin statistics summary.
type DashboardStats struct {
	TotalOrders    int     `json:"totalOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	TotalStores    int     `json:"totalStores"`
	ActiveUsers    int     `json:"activeUsers"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	Currency       string  `json:"currency"`
}
