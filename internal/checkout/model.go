package checkout

import "github.com/MikeMC777/dryfruits-storefront/internal/order"

// CartItem is one line as the client sent it. Price is informational only;
// the catalog price is charged.
type CartItem struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Request is the payment initiation body.
// swagger:model CheckoutRequest
type Request struct {
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Address           string     `json:"address"`
	City              string     `json:"city"`
	Pincode           string     `json:"pincode"`
	CartItems         []CartItem `json:"cartItems"`
	IsMockPayment     bool       `json:"isMockPayment"`
	AppliedCouponCode string     `json:"appliedCouponCode"`
}

type Result struct {
	OrderID     string
	RedirectURL string
	Amount      int64
	Status      order.Status
	CouponCode  *string
}

// Response is returned to the client on success.
// swagger:model CheckoutResponse
type Response struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl"`
}

// ErrorResponse mirrors the failure shape of the payment endpoint.
// swagger:model CheckoutErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// CallbackAck is what the gateway receives for every callback.
// swagger:model CallbackAck
type CallbackAck struct {
	Status string `json:"status"`
}
