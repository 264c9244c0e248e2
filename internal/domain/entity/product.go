package entity

import (
	"time"
)

const DefaultCurrency = "LKR"

type Product struct {
	ID                 string    `json:"_id" firestore:"id"`
	Name               string    `json:"name" firestore:"name"`
	Description        string    `json:"description,omitempty" firestore:"description,omitempty"`
	Category           string    `json:"category" firestore:"category"`
	Price              float64   `json:"price" firestore:"price"`
	Currency           string    `json:"currency" firestore:"currency"`
	DosageInstructions string    `json:"dosage_instructions,omitempty" firestore:"dosageInstructions,omitempty"`
	SellerName         string    `json:"seller_name" firestore:"sellerName"`
	SellerContact      string    `json:"seller_contact" firestore:"sellerContact"`
	SellerLocation     string    `json:"seller_location" firestore:"sellerLocation"`
	ImageURL           string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	StockQuantity      int       `json:"stock_quantity" firestore:"stockQuantity"`
	IsApproved         bool      `json:"is_approved" firestore:"isApproved"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`
}
