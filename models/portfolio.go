package models

import "time"

type Portfolio struct {
	ID          string           `bson:"_id" json:"id"`
	UserID      string           `bson:"user_id" json:"user_id"`
	Name        string           `bson:"name" json:"name"`
	Description string           `bson:"description,omitempty" json:"description,omitempty"`
	Assets      []PortfolioAsset `bson:"assets" json:"assets"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `bson:"updated_at" json:"updated_at"`
}

// PortfolioAsset is one purchase lot embedded in a portfolio. Holdings are
// append-only: there is no route to update or remove a single lot.
type PortfolioAsset struct {
	ID            string    `bson:"id" json:"id"`
	AssetID       string    `bson:"asset_id" json:"asset_id" binding:"required"`
	Quantity      float64   `bson:"quantity" json:"quantity" binding:"required"`
	PurchasePrice float64   `bson:"purchase_price" json:"purchase_price" binding:"required"`
	PurchaseDate  time.Time `bson:"purchase_date" json:"purchase_date" binding:"required"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
}
