// Package reviews keeps the running review summary of a single venue.
package reviews

import (
	"fmt"

	"booking-server/models/review"
)

// ReviewAggregator maintains a venue's review summary and updates it in
// O(categories) per review instead of rescanning the history.
//
// It is not safe for concurrent use; callers keep one aggregator per venue
// behind a single writer.
type ReviewAggregator struct {
	venueID int
	reviews []review.Review
	summary review.Summary

	ratingSum      float64
	categorySums   map[string]float64
	categoryCounts map[string]int
}

// NewReviewAggregator builds the summary for the venue's existing reviews.
// Any invalid review makes the whole load fail.
func NewReviewAggregator(venueID int, existing []review.Review) (*ReviewAggregator, error) {
	a := &ReviewAggregator{
		venueID:        venueID,
		reviews:        make([]review.Review, 0, len(existing)),
		summary:        review.NewSummary(),
		categorySums:   map[string]float64{},
		categoryCounts: map[string]int{},
	}
	for i, r := range existing {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("review %d (%s) of venue %d: %w", i, r.ID, venueID, err)
		}
		a.apply(r)
	}
	return a, nil
}

func (a *ReviewAggregator) VenueID() int {
	return a.venueID
}

// AddReview validates r and folds it into the summary. An invalid review is
// rejected with a *review.ValidationError and leaves the state untouched.
func (a *ReviewAggregator) AddReview(r review.Review) (review.Summary, error) {
	if err := r.Validate(); err != nil {
		return a.Summary(), err
	}
	a.apply(r)
	return a.Summary(), nil
}

// Summary returns a copy of the current summary.
func (a *ReviewAggregator) Summary() review.Summary {
	return a.summary.Copy()
}

// Reviews returns a copy of the reviews folded in so far, oldest first.
func (a *ReviewAggregator) Reviews() []review.Review {
	out := make([]review.Review, len(a.reviews))
	copy(out, a.reviews)
	return out
}

func (a *ReviewAggregator) apply(r review.Review) {
	s := &a.summary
	s.Count++
	a.ratingSum += r.Rating
	s.Average = a.ratingSum / float64(s.Count)
	s.Distribution[review.Bucket(r.Rating)]++

	// A category averages only over the reviews that rated it.
	for name, v := range r.Categories {
		a.categorySums[name] += float64(v)
		a.categoryCounts[name]++
		s.CategoryAverages[name] = a.categorySums[name] / float64(a.categoryCounts[name])
	}

	a.reviews = append(a.reviews, r)
}
