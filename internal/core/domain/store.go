package domain

import "time"

// DefaultCurrency applies when no store is attached to the session.
const DefaultCurrency = "TRY"

// Store is the dealer account a non-staff user belongs to.
type Store struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	TaxNumber        string    `json:"taxNumber"`
	TaxOffice        string    `json:"taxOffice"`
	ContactName      string    `json:"contactName"`
	ContactSurname   string    `json:"contactSurname"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	Fax              string    `json:"fax,omitempty"`
	Address          string    `json:"address"`
	HasOpenAccount   bool      `json:"hasOpenAccount"`
	OpenAccountLimit float64   `json:"openAccountLimit"`
	Balance          float64   `json:"balance"`
	Currency         string    `json:"currency"`
	MaxInstallments  int       `json:"maxInstallments"`
	TotalUsableFunds float64   `json:"totalUsableFunds"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// StoreAddress is a delivery address attached to a store.
type StoreAddress struct {
	ID         int64  `json:"id"`
	StoreID    int64  `json:"storeId"`
	Title      string `json:"title"`
	Address    string `json:"address"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
	IsActive   bool   `json:"isActive"`
}
