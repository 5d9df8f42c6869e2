package product

import "time"

// Product is a catalog entry. Prices are in minor units (paise).
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Price         int64     `json:"price"`
	OriginalPrice *int64    `json:"originalPrice,omitempty"`
	Images        []string  `json:"images"`
	InStock       bool      `json:"inStock"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Quote is the authoritative price of a product at checkout time.
type Quote struct {
	ID      string
	Price   int64
	InStock bool
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Product not found
	Error string `json:"error"`
}

// ListResponse is the paginated catalog page.
// swagger:model
type ListResponse struct {
	Products    []Product `json:"products"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
}
