package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"booking-server/dao/redis"
	"booking-server/db"
	"booking-server/models"
	"booking-server/models/venue"
)

// stubCatalogAPI is an in-memory CatalogAPI that counts calls.
type stubCatalogAPI struct {
	mu     sync.Mutex
	venues []venue.Venue
	err    error
	calls  int
}

func (s *stubCatalogAPI) GetVenues() ([]venue.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return append([]venue.Venue(nil), s.venues...), nil
}

func (s *stubCatalogAPI) FilterVenues(models.FilterCriteria) ([]venue.Venue, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCatalogAPI) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestDAO(t *testing.T) *redis.RedisVenueDAO {
	t.Helper()
	return redis.NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
}

func sampleVenues() []venue.Venue {
	return []venue.Venue{
		{
			ID:           1,
			Name:         "Brew & Work",
			City:         "San Francisco",
			Coordinates:  venue.Coordinates{Lat: 37.7749, Lng: -122.4194},
			Rating:       4.8,
			PricePerHour: 4.75,
			Capacity:     40,
			Amenities:    []string{"WiFi", "Power outlets"},
			Tags:         []string{"Coffee Shop"},
			Features:     venue.Features{HasWifi: true, HasCoffee: true},
		},
		{
			ID:           2,
			Name:         "The Hub",
			City:         "Oakland",
			Coordinates:  venue.Coordinates{Lat: 37.8044, Lng: -122.2712},
			Rating:       4.5,
			PricePerHour: 6.5,
			Capacity:     80,
			Amenities:    []string{"WiFi", "Meeting rooms"},
			Tags:         []string{"Co-working"},
			Features:     venue.Features{HasWifi: true, HasMeetingRooms: true},
		},
		{
			ID:          3,
			Name:        "Library Annex",
			City:        "Austin",
			Coordinates: venue.Coordinates{Lat: 30.2672, Lng: -97.7431},
			Rating:      4.2,
			Capacity:    25,
			Tags:        []string{"Library"},
			Features:    venue.Features{HasQuietSpace: true},
		},
	}
}
