package services

import (
	"fmt"
	"log"
	"sync"

	"booking-server/catalog"
	"booking-server/dao/redis"
	"booking-server/models"
	"booking-server/models/venue"
)

// VenueService answers catalog queries against the latest catalog snapshot.
type VenueService struct {
	venueDao *redis.RedisVenueDAO

	mu      sync.RWMutex
	catalog *catalog.VenueCatalog
}

// NewVenueService constructs a VenueService with an empty catalog.
func NewVenueService(venueDao *redis.RedisVenueDAO) *VenueService {
	return &VenueService{
		venueDao: venueDao,
		catalog:  catalog.NewVenueCatalog(nil),
	}
}

// ReplaceCatalog swaps in a new snapshot. Readers holding the old one are
// unaffected.
func (vs *VenueService) ReplaceCatalog(venues []venue.Venue) {
	c := catalog.NewVenueCatalog(venues)
	vs.mu.Lock()
	vs.catalog = c
	vs.mu.Unlock()
	log.Printf("[VenueService] Catalog replaced with %d venues", c.Len())
}

// Catalog returns the current snapshot.
func (vs *VenueService) Catalog() *catalog.VenueCatalog {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return vs.catalog
}

func (vs *VenueService) FilterVenues(criteria models.FilterCriteria) []venue.Venue {
	return vs.Catalog().Filter(criteria)
}

func (vs *VenueService) GetVenue(id int) (venue.Venue, error) {
	v, ok := vs.Catalog().Get(id)
	if !ok {
		return venue.Venue{}, fmt.Errorf("venue %d: %w", id, ErrVenueNotFound)
	}
	return v, nil
}

// GetVenuesNearby returns venues within radius kilometers, nearest first.
func (vs *VenueService) GetVenuesNearby(lat, lon, radius float64) ([]venue.Venue, error) {
	return vs.venueDao.GetNearbyVenues(lat, lon, radius)
}

// VenueIDs lists the ids of the current catalog in catalog order.
func (vs *VenueService) VenueIDs() []int {
	venues := vs.Catalog().Venues()
	ids := make([]int, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	return ids
}
