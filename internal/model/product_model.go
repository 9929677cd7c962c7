package model

import "time"

// Product types sold by the store.
const (
	ProductTypeCustomNote  = "custom_note"
	ProductTypeNoteBouquet = "note_bouquet"
	ProductTypePhotoFrame  = "photo_frame"
	ProductTypeGiftBox     = "gift_box"
)

// Product represents a row in the products table. Name is the primary key
// and doubles as the SKU/slug.
type Product struct {
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Description     *string    `json:"description,omitempty"`
	BasePrice       float64    `json:"base_price"`
	Available       bool       `json:"available"`
	FulfillmentDays int        `json:"fulfillment_days"`
	ImageURL        *string    `json:"image_url,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
