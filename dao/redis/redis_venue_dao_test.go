package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-server/db"
	"booking-server/models/review"
	"booking-server/models/venue"
)

func TestRedisVenueDAO_UpsertVenue_Success(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	testVenue := venue.Venue{
		ID:          123,
		Name:        "Test Venue",
		Coordinates: venue.Coordinates{Lat: 40.7128, Lng: -74.0060},
	}

	// Act
	err := dao.UpsertVenue(testVenue)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expectedKey := "venues_geo_place_v1:123"
	storedValue, err := mockClient.Get(expectedKey)
	if err != nil {
		t.Fatalf("Expected data to be stored, got error: %v", err)
	}

	var storedVenue venue.Venue
	if err := json.Unmarshal([]byte(storedValue), &storedVenue); err != nil {
		t.Fatalf("Failed to unmarshal stored venue data: %v", err)
	}

	if storedVenue.ID != testVenue.ID {
		t.Errorf("Expected ID %d, got %d", testVenue.ID, storedVenue.ID)
	}
}

func TestRedisVenueDAO_GetNearbyVenues_Success(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	_ = dao.UpsertVenue(venue.Venue{ID: 1, Name: "Test Venue 1", Coordinates: venue.Coordinates{Lat: 40.7128, Lng: -74.0060}})
	_ = dao.UpsertVenue(venue.Venue{ID: 2, Name: "Test Venue 2", Coordinates: venue.Coordinates{Lat: 40.7130, Lng: -74.0050}})
	_ = dao.UpsertVenue(venue.Venue{ID: 3, Name: "Far Away", Coordinates: venue.Coordinates{Lat: 51.5072, Lng: -0.1276}})

	venues, err := dao.GetNearbyVenues(40.7128, -74.0060, 1)

	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, 1, venues[0].ID)
	assert.Equal(t, 2, venues[1].ID)
}

func TestRedisVenueDAO_GetNearbyVenues_NoResults(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisVenueDAO(mockClient)

	venues, err := dao.GetNearbyVenues(40.7128, -74.0060, 1000)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(venues) != 0 {
		t.Errorf("Expected no venues, got %d", len(venues))
	}
}

func TestRedisVenueDAO_ListAllVenues_SortedByID(t *testing.T) {
	dao := NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	for _, id := range []int{10, 2, 7} {
		require.NoError(t, dao.UpsertVenue(venue.Venue{ID: id, Name: "v"}))
	}

	venues, err := dao.ListAllVenues()
	require.NoError(t, err)

	var ids []int
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int{2, 7, 10}, ids)
}

func TestRedisVenueDAO_GetVenue_NotFound(t *testing.T) {
	dao := NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))

	_, err := dao.GetVenue(99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRedisVenueDAO_Reviews(t *testing.T) {
	dao := NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))

	reviews, err := dao.GetReviews(5)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	require.NoError(t, dao.AppendReview(review.Review{ID: "a", VenueID: 5, Rating: 4}))
	require.NoError(t, dao.AppendReview(review.Review{ID: "b", VenueID: 5, Rating: 2, Categories: map[string]int{review.CategoryWifi: 3}}))
	require.NoError(t, dao.AppendReview(review.Review{ID: "c", VenueID: 6, Rating: 5}))

	reviews, err = dao.GetReviews(5)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "a", reviews[0].ID)
	assert.Equal(t, 3, reviews[1].Categories[review.CategoryWifi])
}

func TestRedisVenueDAO_ReviewsSummary(t *testing.T) {
	dao := NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))

	_, err := dao.GetReviewsSummary(1)
	assert.True(t, errors.Is(err, ErrNotFound))

	s := review.NewSummary()
	s.Count = 2
	s.Average = 3
	s.Distribution[4] = 1
	s.Distribution[2] = 1
	s.CategoryAverages[review.CategoryNoise] = 2.5
	require.NoError(t, dao.SetReviewsSummary(1, s))

	got, err := dao.GetReviewsSummary(1)
	require.NoError(t, err)
	assert.Equal(t, s, *got)
}

func TestRedisVenueDAO_DeleteVenue(t *testing.T) {
	dao := NewRedisVenueDAO(db.NewMockRedisClient(context.Background()))
	require.NoError(t, dao.UpsertVenue(venue.Venue{ID: 4, Name: "Gone"}))
	require.NoError(t, dao.AppendReview(review.Review{ID: "x", VenueID: 4, Rating: 3}))

	require.NoError(t, dao.DeleteVenue(4))

	_, err := dao.GetVenue(4)
	assert.True(t, errors.Is(err, ErrNotFound))

	nearby, err := dao.GetNearbyVenues(0, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, nearby)

	ids, err := dao.ListAllVenueIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	reviews, err := dao.GetReviews(4)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
