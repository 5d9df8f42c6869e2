package review

import "time"

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateRequest
// swagger:model CreateReviewRequest
type CreateRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	ImageURL  string `json:"imageUrl"`
}
