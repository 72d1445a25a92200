// Package catalog holds the in-memory venue catalog and its search filter.
package catalog

import (
	"strings"

	"booking-server/models"
	"booking-server/models/venue"
)

// VenueCatalog is an immutable, ordered list of venues with unique ids.
type VenueCatalog struct {
	venues []venue.Venue
	byID   map[int]int
}

// NewVenueCatalog copies venues into a catalog. A venue whose id was already
// seen is dropped, so the first occurrence wins.
func NewVenueCatalog(venues []venue.Venue) *VenueCatalog {
	c := &VenueCatalog{
		venues: make([]venue.Venue, 0, len(venues)),
		byID:   make(map[int]int, len(venues)),
	}
	for _, v := range venues {
		if _, dup := c.byID[v.ID]; dup {
			continue
		}
		c.byID[v.ID] = len(c.venues)
		c.venues = append(c.venues, v)
	}
	return c
}

// Venues returns the catalog in its original order.
func (c *VenueCatalog) Venues() []venue.Venue {
	out := make([]venue.Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

func (c *VenueCatalog) Len() int {
	return len(c.venues)
}

// Get looks a venue up by id.
func (c *VenueCatalog) Get(id int) (venue.Venue, bool) {
	i, ok := c.byID[id]
	if !ok {
		return venue.Venue{}, false
	}
	return c.venues[i], true
}

// Filter returns the venues matching every criterion, in catalog order.
func (c *VenueCatalog) Filter(criteria models.FilterCriteria) []venue.Venue {
	return FilterVenues(c.venues, criteria)
}

// FilterVenues keeps the venues that satisfy all of the criteria. Criteria
// groups are ANDed together. Within a group, amenities need every entry to
// match while tags need only one. The input slice is never modified.
func FilterVenues(venues []venue.Venue, criteria models.FilterCriteria) []venue.Venue {
	f := newMatcher(criteria)
	out := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if f.match(v) {
			out = append(out, v)
		}
	}
	return out
}

// matcher holds the criteria pre-lowercased and the hours zero-padded for
// repeated comparisons.
type matcher struct {
	c         models.FilterCriteria
	query     string
	location  string
	amenities []string
	tags      []string
	openBy    string
	closeAt   string
}

func newMatcher(c models.FilterCriteria) matcher {
	return matcher{
		c:         c,
		query:     strings.ToLower(strings.TrimSpace(c.Query)),
		location:  strings.ToLower(strings.TrimSpace(c.Location)),
		amenities: lowerAll(c.Amenities),
		tags:      lowerAll(c.Tags),
		openBy:    normalizedClock(c.Hours.Open),
		closeAt:   normalizedClock(c.Hours.Close),
	}
}

// normalizedClock zero-pads a criteria time. Unparseable input is compared
// as given.
func normalizedClock(s string) string {
	n, err := venue.NormalizeClock(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return n
}

func (m matcher) match(v venue.Venue) bool {
	return m.matchQuery(v) &&
		m.matchLocation(v) &&
		m.matchAmenities(v) &&
		m.matchPrice(v) &&
		m.matchRating(v) &&
		m.matchCapacity(v) &&
		m.matchTags(v) &&
		m.matchHours(v) &&
		v.Features.Satisfies(m.c.Features)
}

func (m matcher) matchQuery(v venue.Venue) bool {
	if m.query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Name), m.query) ||
		strings.Contains(strings.ToLower(v.Description), m.query)
}

func (m matcher) matchLocation(v venue.Venue) bool {
	if m.location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.City), m.location) ||
		strings.Contains(strings.ToLower(v.State), m.location) ||
		strings.Contains(strings.ToLower(v.ZipCode), m.location)
}

func (m matcher) matchAmenities(v venue.Venue) bool {
	if len(m.amenities) == 0 {
		return true
	}
	have := lowerAll(v.Amenities)
	for _, want := range m.amenities {
		found := false
		for _, a := range have {
			if strings.Contains(a, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (m matcher) matchPrice(v venue.Venue) bool {
	if m.c.MinPrice != nil && v.PricePerHour < *m.c.MinPrice {
		return false
	}
	if m.c.MaxPrice != nil && v.PricePerHour > *m.c.MaxPrice {
		return false
	}
	return true
}

func (m matcher) matchRating(v venue.Venue) bool {
	return m.c.MinRating == nil || v.Rating >= *m.c.MinRating
}

func (m matcher) matchCapacity(v venue.Venue) bool {
	return m.c.MinCapacity == nil || v.Capacity >= *m.c.MinCapacity
}

func (m matcher) matchTags(v venue.Venue) bool {
	if len(m.tags) == 0 {
		return true
	}
	for _, t := range v.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		for _, want := range m.tags {
			if t == want {
				return true
			}
		}
	}
	return false
}

// matchHours only consults Monday's hours whatever day the caller has in mind.
// A venue without Monday hours fails any hours constraint.
func (m matcher) matchHours(v venue.Venue) bool {
	wantOpen, wantClose := m.openBy, m.closeAt
	if wantOpen == "" && wantClose == "" {
		return true
	}
	h, ok := v.Hours[venue.Monday]
	if !ok {
		return false
	}
	if wantOpen != "" && (h.Open == "" || h.Open > wantOpen) {
		return false
	}
	if wantClose != "" && (h.Close == "" || h.Close < wantClose) {
		return false
	}
	return true
}

// lowerAll lowercases and trims entries, dropping blank ones.
func lowerAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
