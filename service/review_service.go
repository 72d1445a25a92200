package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"booking-server/dao/redis"
	"booking-server/models/review"
	"booking-server/reviews"
)

const summaryLoadConcurrency = 8

// ReviewService owns one ReviewAggregator per venue and persists reviews and
// summaries through the DAO. Writes are serialized by mu.
type ReviewService struct {
	venueDao     *redis.RedisVenueDAO
	venueService *VenueService

	mu          sync.Mutex
	aggregators map[int]*reviews.ReviewAggregator

	now   func() time.Time
	newID func() string
}

// NewReviewService constructs a ReviewService with dependencies.
func NewReviewService(venueDao *redis.RedisVenueDAO, venueService *VenueService) *ReviewService {
	return &ReviewService{
		venueDao:     venueDao,
		venueService: venueService,
		aggregators:  make(map[int]*reviews.ReviewAggregator),
		now:          func() time.Time { return time.Now().UTC() },
		newID:        func() string { return uuid.NewString() },
	}
}

// LoadSummaries rebuilds the aggregators of the given venues from stored
// reviews and writes their summaries back. Venues are loaded concurrently.
// Venues that already have an aggregator in memory are left alone, so
// reviews added while loading are never lost.
func (rs *ReviewService) LoadSummaries(ctx context.Context, venueIDs []int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryLoadConcurrency)

	for _, id := range venueIDs {
		id := id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if rs.isLoaded(id) {
				return nil
			}
			agg, err := rs.buildAggregator(id)
			if err != nil {
				return err
			}
			return rs.storeIfAbsent(agg)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("[ReviewService] Loaded review summaries for %d venues", len(venueIDs))
	return nil
}

// AddReview validates r, persists it and folds it into the venue summary.
// An empty ID gets a fresh uuid and a zero CreatedAt gets the current time.
func (rs *ReviewService) AddReview(venueID int, r review.Review) (review.Review, review.Summary, error) {
	if _, err := rs.venueService.GetVenue(venueID); err != nil {
		return review.Review{}, review.Summary{}, err
	}
	if err := r.Validate(); err != nil {
		return review.Review{}, review.Summary{}, err
	}

	r.VenueID = venueID
	if r.ID == "" {
		r.ID = rs.newID()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = rs.now()
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	agg, err := rs.aggregatorLocked(venueID)
	if err != nil {
		return review.Review{}, review.Summary{}, err
	}

	// Persist first so a storage failure leaves the aggregator untouched.
	if err := rs.venueDao.AppendReview(r); err != nil {
		return review.Review{}, review.Summary{}, fmt.Errorf("append review: %w", err)
	}
	summary, err := agg.AddReview(r)
	if err != nil {
		return review.Review{}, review.Summary{}, err
	}
	if err := rs.venueDao.SetReviewsSummary(venueID, summary); err != nil {
		log.Printf("[ReviewService] Failed to store summary for venue %d: %v", venueID, err)
	}

	log.Printf("[ReviewService] Added review %s to venue %d (count=%d avg=%.2f)",
		r.ID, venueID, summary.Count, summary.Average)
	return r, summary, nil
}

// GetReviews returns the reviews of a venue in insertion order.
func (rs *ReviewService) GetReviews(venueID int) ([]review.Review, error) {
	if _, err := rs.venueService.GetVenue(venueID); err != nil {
		return nil, err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()

	agg, err := rs.aggregatorLocked(venueID)
	if err != nil {
		return nil, err
	}
	return agg.Reviews(), nil
}

// GetSummary returns the current review summary of a venue. Venues without an
// aggregator in memory are served from the summary cached in Redis.
func (rs *ReviewService) GetSummary(venueID int) (review.Summary, error) {
	if _, err := rs.venueService.GetVenue(venueID); err != nil {
		return review.Summary{}, err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if _, ok := rs.aggregators[venueID]; !ok {
		cached, err := rs.venueDao.GetReviewsSummary(venueID)
		if err == nil {
			return cached.Copy(), nil
		}
		if !errors.Is(err, redis.ErrNotFound) {
			log.Printf("[ReviewService] Summary cache read failed for venue %d: %v", venueID, err)
		}
	}

	agg, err := rs.aggregatorLocked(venueID)
	if err != nil {
		return review.Summary{}, err
	}
	return agg.Summary(), nil
}

// SeedReviews stores fixture reviews for venues that have none stored yet.
// It returns the number of reviews written. Call LoadSummaries afterwards.
func (rs *ReviewService) SeedReviews(seed []review.Review) (int, error) {
	empty := make(map[int]bool)
	written := 0

	for _, r := range seed {
		isEmpty, checked := empty[r.VenueID]
		if !checked {
			stored, err := rs.venueDao.GetReviews(r.VenueID)
			if err != nil {
				return written, err
			}
			isEmpty = len(stored) == 0
			empty[r.VenueID] = isEmpty
		}
		if !isEmpty {
			continue
		}
		if err := r.Validate(); err != nil {
			log.Printf("[ReviewService] Skipping invalid seed review %s: %v", r.ID, err)
			continue
		}
		if r.ID == "" {
			r.ID = rs.newID()
		}
		if err := rs.venueDao.AppendReview(r); err != nil {
			return written, fmt.Errorf("seed review %s: %w", r.ID, err)
		}
		written++
	}

	log.Printf("[ReviewService] Seeded %d reviews", written)
	return written, nil
}

func (rs *ReviewService) isLoaded(venueID int) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	_, ok := rs.aggregators[venueID]
	return ok
}

// storeIfAbsent caches agg and writes its summary unless another aggregator
// for the venue got there first.
func (rs *ReviewService) storeIfAbsent(agg *reviews.ReviewAggregator) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	id := agg.VenueID()
	if _, ok := rs.aggregators[id]; ok {
		return nil
	}
	if err := rs.venueDao.SetReviewsSummary(id, agg.Summary()); err != nil {
		return fmt.Errorf("store summary for venue %d: %w", id, err)
	}
	rs.aggregators[id] = agg
	return nil
}

// aggregatorLocked returns the cached aggregator or builds it from storage.
// rs.mu must be held.
func (rs *ReviewService) aggregatorLocked(venueID int) (*reviews.ReviewAggregator, error) {
	if agg, ok := rs.aggregators[venueID]; ok {
		return agg, nil
	}
	agg, err := rs.buildAggregator(venueID)
	if err != nil {
		return nil, err
	}
	rs.aggregators[venueID] = agg
	return agg, nil
}

func (rs *ReviewService) buildAggregator(venueID int) (*reviews.ReviewAggregator, error) {
	stored, err := rs.venueDao.GetReviews(venueID)
	if err != nil {
		return nil, fmt.Errorf("load reviews for venue %d: %w", venueID, err)
	}
	agg, err := reviews.NewReviewAggregator(venueID, stored)
	if err != nil {
		return nil, fmt.Errorf("rebuild summary for venue %d: %w", venueID, err)
	}
	return agg, nil
}
