package review

import (
	"fmt"
	"math"
	"time"
)

const (
	MinRating = 0
	MaxRating = 5
)

// Review categories a reviewer may rate on top of the overall rating.
const (
	CategoryNoise   = "noise"
	CategoryComfort = "comfort"
	CategoryWifi    = "wifi"
	CategoryCoffee  = "coffee"
	CategoryStaff   = "staff"
)

var Categories = []string{CategoryNoise, CategoryComfort, CategoryWifi, CategoryCoffee, CategoryStaff}

func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Review is a single user-submitted rating for one venue. It is immutable
// once stored.
type Review struct {
	ID         string         `json:"id"`
	VenueID    int            `json:"venueId"`
	Author     string         `json:"author,omitempty"`
	Comment    string         `json:"comment,omitempty"`
	Rating     float64        `json:"rating"`
	Categories map[string]int `json:"categories,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// Validate rejects ratings outside [0,5] and unknown or out of range
// category sub-ratings.
func (r Review) Validate() error {
	if math.IsNaN(r.Rating) || r.Rating < MinRating || r.Rating > MaxRating {
		return &ValidationError{Field: "rating", Value: r.Rating}
	}
	for name, v := range r.Categories {
		if !IsCategory(name) {
			return &ValidationError{Field: name, Unknown: true}
		}
		if v < MinRating || v > MaxRating {
			return &ValidationError{Field: name, Value: float64(v)}
		}
	}
	return nil
}

// ValidationError reports a review that cannot be accepted.
type ValidationError struct {
	Field   string
	Value   float64
	Unknown bool
}

func (e *ValidationError) Error() string {
	if e.Unknown {
		return fmt.Sprintf("unknown review category %q", e.Field)
	}
	return fmt.Sprintf("%s must be between %d and %d", e.Field, MinRating, MaxRating)
}
