package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"booking-server/db"
	"booking-server/models/review"
	"booking-server/models/venue"
)

const VENUES_GEO_KEY_V1 = "venues_geo_v1"
const VENUES_GEO_PLACE_MEMBER_PREFIX_V1 = "venues_geo_place_v1:"
const VENUES_GEO_PLACE_MEMBER_FORMAT_V1 = VENUES_GEO_PLACE_MEMBER_PREFIX_V1 + "%d"
const VENUE_REVIEWS_KEY_FORMAT_V1 = "venue_reviews_v1:%d"
const REVIEWS_SUMMARY_KEY_FORMAT_V1 = "reviews_summary_v1:%d"

// ErrNotFound is returned when a venue or summary is not stored.
var ErrNotFound = errors.New("not found")

// RedisVenueDAO handles venue and review persistence using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue as a geolocation with the venue's JSON data.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	ctx := dao.client.GetContext()
	venueKey := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, v.ID)
	if err := dao.client.AddLocationWithJSON(ctx, VENUES_GEO_KEY_V1, venueKey, v.Coordinates.Lat, v.Coordinates.Lng, v); err != nil {
		return fmt.Errorf("[RedisVenueDAO] failed to upsert venue %d: %w", v.ID, err)
	}
	return nil
}

// GetVenue loads a single venue by id.
func (dao *RedisVenueDAO) GetVenue(id int) (*venue.Venue, error) {
	str, err := dao.client.Get(fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, id))
	if errors.Is(err, db.ErrNil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %d from redis: %w", id, err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// GetNearbyVenues retrieves venues within radius kilometers, nearest first.
func (dao *RedisVenueDAO) GetNearbyVenues(lat, lon float64, radius float64) ([]venue.Venue, error) {
	venuesJSON, err := dao.client.GetLocationsWithinRadius(VENUES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisVenueDAO] failed to get venues: %w", err)
	}

	venues := make([]venue.Venue, len(venuesJSON))
	for i, venueJSON := range venuesJSON {
		if err := json.Unmarshal([]byte(venueJSON), &venues[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
		}
	}
	return venues, nil
}

// ListAllVenueIDs returns all venue IDs present in the geo index, ascending.
func (dao *RedisVenueDAO) ListAllVenueIDs() ([]int, error) {
	keys, err := dao.client.Keys(VENUES_GEO_PLACE_MEMBER_PREFIX_V1 + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list venue geo keys: %w", err)
	}
	ids := make([]int, 0, len(keys))
	for _, k := range keys {
		id, err := strconv.Atoi(strings.TrimPrefix(k, VENUES_GEO_PLACE_MEMBER_PREFIX_V1))
		if err != nil {
			log.Printf("[RedisVenueDAO] Skipping malformed venue key %q", k)
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// ListAllVenues loads every stored venue ordered by id.
func (dao *RedisVenueDAO) ListAllVenues() ([]venue.Venue, error) {
	ids, err := dao.ListAllVenueIDs()
	if err != nil {
		return nil, err
	}
	venues := make([]venue.Venue, 0, len(ids))
	for _, id := range ids {
		v, err := dao.GetVenue(id)
		if err != nil {
			return nil, err
		}
		venues = append(venues, *v)
	}
	return venues, nil
}

// GetReviews returns the stored reviews of a venue, oldest first.
func (dao *RedisVenueDAO) GetReviews(venueID int) ([]review.Review, error) {
	str, err := dao.client.Get(fmt.Sprintf(VENUE_REVIEWS_KEY_FORMAT_V1, venueID))
	if errors.Is(err, db.ErrNil) {
		return []review.Review{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews of venue %d: %w", venueID, err)
	}
	var reviews []review.Review
	if err := json.Unmarshal([]byte(str), &reviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reviews JSON: %w", err)
	}
	return reviews, nil
}

// AppendReview adds r to its venue's review list. The read-modify-write is
// not atomic; callers serialize writes per venue.
func (dao *RedisVenueDAO) AppendReview(r review.Review) error {
	reviews, err := dao.GetReviews(r.VenueID)
	if err != nil {
		return err
	}
	reviews = append(reviews, r)
	data, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("failed to marshal reviews of venue %d: %w", r.VenueID, err)
	}
	if err := dao.client.Set(fmt.Sprintf(VENUE_REVIEWS_KEY_FORMAT_V1, r.VenueID), string(data)); err != nil {
		return fmt.Errorf("failed to set reviews in redis: %w", err)
	}
	return nil
}

// SetReviewsSummary caches the review summary of a venue.
func (dao *RedisVenueDAO) SetReviewsSummary(venueID int, s review.Summary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal summary for venue %d: %w", venueID, err)
	}
	if err := dao.client.Set(fmt.Sprintf(REVIEWS_SUMMARY_KEY_FORMAT_V1, venueID), string(data)); err != nil {
		return fmt.Errorf("failed to set summary in redis: %w", err)
	}
	return nil
}

// GetReviewsSummary retrieves the cached review summary of a venue.
func (dao *RedisVenueDAO) GetReviewsSummary(venueID int) (*review.Summary, error) {
	str, err := dao.client.Get(fmt.Sprintf(REVIEWS_SUMMARY_KEY_FORMAT_V1, venueID))
	if errors.Is(err, db.ErrNil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary from redis: %w", err)
	}
	var s review.Summary
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary JSON: %w", err)
	}
	return &s, nil
}

// DeleteVenue removes a venue from the geo index and drops its record.
// Reviews and the cached summary are kept so they survive the venue
// returning to the catalog.
func (dao *RedisVenueDAO) DeleteVenue(id int) error {
	member := fmt.Sprintf(VENUES_GEO_PLACE_MEMBER_FORMAT_V1, id)
	if err := dao.client.RemoveLocation(dao.client.GetContext(), VENUES_GEO_KEY_V1, member); err != nil {
		return fmt.Errorf("failed to delete venue %d: %w", id, err)
	}
	log.Printf("[RedisVenueDAO] Deleted venue %d", id)
	return nil
}
