package models

import (
	"time"
)

// Vendor is a street-food vendor's business profile: what they need to buy
// and where they operate.
type Vendor struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	BusinessName string    `json:"business_name"`
	Needs        []string  `json:"needs"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateVendorRequest is the request body for creating or updating the
// authenticated vendor's profile.
type UpdateVendorRequest struct {
	BusinessName string   `json:"business_name"`
	Needs        []string `json:"needs"`
	Location     string   `json:"location"`
}

// RecommendationQuery is the request body for previewing recommendations
// with explicit needs instead of the stored vendor profile.
// MaxRecommendations distinguishes "omitted" (nil, use the default) from an
// explicit zero, which yields no recommendations.
type RecommendationQuery struct {
	Needs              []string `json:"needs"`
	Location           string   `json:"location"`
	MaxRecommendations *int     `json:"max_recommendations,omitempty"`
}
