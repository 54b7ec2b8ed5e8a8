package models

import (
	"time"
)

// PriceRange is a supplier's coarse price tier.
type PriceRange string

const (
	PriceRangeLow    PriceRange = "low"
	PriceRangeMedium PriceRange = "medium"
	PriceRangeHigh   PriceRange = "high"
)

// DeliveryTime is a supplier's typical delivery window.
type DeliveryTime string

const (
	DeliverySameDay    DeliveryTime = "same_day"
	DeliveryNextDay    DeliveryTime = "next_day"
	DeliveryWithinWeek DeliveryTime = "within_week"
)

// Supplier is a catalog entry: one supplier business and what it can
// deliver. Items keep their original casing for display; matching against
// vendor needs is case-insensitive and handled by the recommendation engine.
type Supplier struct {
	ID           int          `json:"id"`
	UserID       int          `json:"user_id,omitempty"`
	Name         string       `json:"name"`
	Location     string       `json:"location"`
	Items        []string     `json:"items"`
	Rating       float64      `json:"rating"`
	TotalRatings int          `json:"total_ratings"`
	PriceRange   PriceRange   `json:"price_range"`
	DeliveryTime DeliveryTime `json:"delivery_time"`
	Description  string       `json:"description"`
	Address      *string      `json:"address,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// UpdateSupplierRequest is the request body for creating or updating the
// authenticated supplier's business profile.
type UpdateSupplierRequest struct {
	BusinessName string       `json:"business_name"`
	Items        []string     `json:"items"`
	PriceRange   PriceRange   `json:"price_range"`
	DeliveryTime DeliveryTime `json:"delivery_time"`
	Description  string       `json:"description"`
	Address      *string      `json:"address,omitempty"`
}
