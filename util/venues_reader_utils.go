package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"booking-server/models/review"
	"booking-server/models/venue"
)

// ReadVenues loads a venue catalog from a .json, .yaml or .yml file.
func ReadVenues(filePath string) ([]venue.Venue, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return ReadVenuesFromYAML(filePath)
	case ".json":
		return ReadVenuesFromJSON(filePath)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filePath)
	}
}

// ReadVenuesFromJSON loads a slice of venues from JSON on disk.
func ReadVenuesFromJSON(filePath string) ([]venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %w", err)
	}
	return venues, nil
}

// ReadVenuesFromYAML loads a slice of venues from YAML on disk.
func ReadVenuesFromYAML(filePath string) ([]venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []venue.Venue
	if err := yaml.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues YAML: %w", err)
	}
	return venues, nil
}

// ReadReviewsFromJSON loads seed reviews from JSON on disk.
func ReadReviewsFromJSON(filePath string) ([]review.Review, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var reviews []review.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews: %w", err)
	}
	return reviews, nil
}
