package order

// Details is the owner view of one order.
// swagger:model OrderDetails
type Details struct {
	Order
	Items []Item `json:"items"`
}

// ListResponse is the caller's order history page.
// swagger:model OrderListResponse
type ListResponse struct {
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
	Orders []Order `json:"orders"`
}
