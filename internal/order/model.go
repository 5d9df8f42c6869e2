package order

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

type ShippingAddress struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// Order amounts are minor units after discount.
type Order struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"userId"`
	Amount                int64           `json:"amount"`
	Status                Status          `json:"status"`
	ShippingAddress       ShippingAddress `json:"shippingAddress"`
	CouponCode            *string         `json:"couponCode,omitempty"`
	MerchantTransactionID string          `json:"-"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// Item is immutable once written; Price is the unit price at purchase time.
type Item struct {
	ID        string   `json:"id"`
	OrderID   string   `json:"orderId"`
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     int64    `json:"price"`
	Name      string   `json:"name,omitempty"`
	Images    []string `json:"images,omitempty"`
}
