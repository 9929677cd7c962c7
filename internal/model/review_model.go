package model

import "time"

// ProductReview represents a row in the product_reviews table.
type ProductReview struct {
	ReviewID      int64      `json:"review_id"`
	ProductName   string     `json:"product_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerName  *string    `json:"customer_name,omitempty"`
	Rating        int        `json:"rating"`
	Comment       *string    `json:"comment,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// WishlistItem represents a row in the wishlist table.
type WishlistItem struct {
	WishlistID    int64      `json:"wishlist_id"`
	CustomerEmail string     `json:"customer_email"`
	ProductName   string     `json:"product_name"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// ContactMessage represents a row in the contact_messages table. AssignedTo
// holds the admin email handling the message, when one has picked it up.
type ContactMessage struct {
	MessageID  int64      `json:"message_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Subject    *string    `json:"subject,omitempty"`
	Message    string     `json:"message"`
	Status     string     `json:"status"`
	AssignedTo *string    `json:"assigned_to,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
