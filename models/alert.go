package models

import "time"

// Alert stores a user-defined price alert. The condition is opaque free
// text; nothing in this service parses or evaluates it, and Triggered is
// never flipped here.
type Alert struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	AssetID   string    `bson:"asset_id" json:"asset_id"`
	Condition string    `bson:"condition" json:"condition"`
	Message   string    `bson:"message" json:"message"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	Triggered bool      `bson:"triggered" json:"triggered"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
