package services

import (
	"context"
	"errors"
	"log"
	"time"

	"booking-server/api/catalog"
	"booking-server/dao/redis"
	"booking-server/models/venue"
)

// CatalogRefresherService periodically pulls the catalog from its source,
// stores it in Redis and publishes it to the VenueService.
type CatalogRefresherService struct {
	venueDao     *redis.RedisVenueDAO
	catalogAPI   catalog.CatalogAPI
	venueService *VenueService
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(
	venueDao *redis.RedisVenueDAO,
	catalogAPI catalog.CatalogAPI,
	venueService *VenueService,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		venueDao:     venueDao,
		catalogAPI:   catalogAPI,
		venueService: venueService,
	}
}

// StartPeriodicJob launches the background loop at the given interval until
// ctx is cancelled.
func (cr *CatalogRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Printf("[CatalogRefresherService] Periodic job disabled (interval=%s)", interval)
		return
	}
	go cr.startPeriodicJob(ctx, interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[CatalogRefresherService] Periodic job stopped.")
			return
		case <-ticker.C:
			log.Println("[CatalogRefresherService] Running periodic catalog refresher job.")
			if _, err := cr.RefreshCatalog(); err != nil {
				log.Printf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
			}
		}
	}
}

// RefreshCatalog fetches, validates, dedupes, upserts and publishes the
// catalog, then removes stored venues that left it. It returns the number of
// venues published. When the source fails or yields nothing usable the
// previous catalog stays in place.
func (cr *CatalogRefresherService) RefreshCatalog() (int, error) {
	fetched, err := cr.catalogAPI.GetVenues()
	if err != nil {
		return 0, err
	}
	log.Printf("[CatalogRefresherService] Fetched %d venues from source", len(fetched))

	unique := cr.processVenues(fetched)
	if len(unique) == 0 {
		return 0, errors.New("catalog source returned no valid venues")
	}

	if err := cr.pruneStaleVenues(unique); err != nil {
		log.Printf("[CatalogRefresherService] Pruning stale venues failed: %v", err)
	}
	cr.venueService.ReplaceCatalog(unique)
	return len(unique), nil
}

// RestoreCatalog publishes the venues already stored in Redis. It is used
// when the source is unreachable at startup.
func (cr *CatalogRefresherService) RestoreCatalog() (int, error) {
	stored, err := cr.venueDao.ListAllVenues()
	if err != nil {
		return 0, err
	}
	if len(stored) == 0 {
		return 0, errors.New("no stored venues to restore")
	}
	cr.venueService.ReplaceCatalog(stored)
	return len(stored), nil
}

// pruneStaleVenues deletes stored venues missing from the new catalog so
// geo queries stop returning them.
func (cr *CatalogRefresherService) pruneStaleVenues(current []venue.Venue) error {
	keep := make(map[int]struct{}, len(current))
	for _, v := range current {
		keep[v.ID] = struct{}{}
	}

	storedIDs, err := cr.venueDao.ListAllVenueIDs()
	if err != nil {
		return err
	}
	for _, id := range storedIDs {
		if _, ok := keep[id]; ok {
			continue
		}
		if err := cr.venueDao.DeleteVenue(id); err != nil {
			return err
		}
		log.Printf("[CatalogRefresherService] Removed stale venue ID=%d", id)
	}
	return nil
}

// processVenues drops invalid and duplicate venues and upserts the rest.
func (cr *CatalogRefresherService) processVenues(fetched []venue.Venue) []venue.Venue {
	seenIDs := make(map[int]struct{})
	seenNames := make(map[string]struct{})
	unique := make([]venue.Venue, 0, len(fetched))

	for _, v := range fetched {
		if err := v.Validate(); err != nil {
			log.Printf("[CatalogRefresherService] Skipping invalid venue: %v", err)
			continue
		}
		if _, dup := seenIDs[v.ID]; dup {
			log.Printf("[CatalogRefresherService] Skipping duplicate id %s", v.ToString())
			continue
		}
		if _, dup := seenNames[v.Name]; dup {
			log.Printf("[CatalogRefresherService] Skipping duplicate name %s", v.ToString())
			continue
		}
		seenIDs[v.ID] = struct{}{}
		seenNames[v.Name] = struct{}{}

		if err := cr.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[CatalogRefresherService] Upsert failed for %d: %v", v.ID, err)
			continue
		}
		unique = append(unique, v)
	}
	return unique
}
