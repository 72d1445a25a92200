package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"booking-server/models/venue"
)

// Query argument names understood by FromValues and produced by ToValues.
const (
	QUERY_ARG        = "q"
	LOCATION_ARG     = "location"
	AMENITIES_ARG    = "amenities"
	TAGS_ARG         = "tags"
	MIN_PRICE_ARG    = "min_price"
	MAX_PRICE_ARG    = "max_price"
	MIN_RATING_ARG   = "min_rating"
	MIN_CAPACITY_ARG = "min_capacity"
	OPEN_ARG         = "open"
	CLOSE_ARG        = "close"
	FEATURES_ARG     = "features"
)

// FilterCriteria narrows the venue catalog. Zero values impose no constraint.
type FilterCriteria struct {
	Query       string         `json:"query,omitempty"`
	Location    string         `json:"location,omitempty"`
	Amenities   []string       `json:"amenities,omitempty"` // venue must have all
	MinPrice    *float64       `json:"minPrice,omitempty"`
	MaxPrice    *float64       `json:"maxPrice,omitempty"`
	MinRating   *float64       `json:"minRating,omitempty"`
	MinCapacity *int           `json:"minCapacity,omitempty"`
	Tags        []string       `json:"tags,omitempty"` // venue must have any
	Hours       HoursFilter    `json:"hours,omitempty"`
	Features    venue.Features `json:"features,omitempty"` // only true flags are enforced
}

// HoursFilter asks for venues open by Open and still open at Close.
type HoursFilter struct {
	Open  string `json:"open,omitempty"`
	Close string `json:"close,omitempty"`
}

// IsEmpty reports whether the criteria would keep every venue.
func (c FilterCriteria) IsEmpty() bool {
	return c.Query == "" && c.Location == "" &&
		len(nonBlank(c.Amenities)) == 0 && len(nonBlank(c.Tags)) == 0 &&
		c.MinPrice == nil && c.MaxPrice == nil && c.MinRating == nil && c.MinCapacity == nil &&
		c.Hours.Open == "" && c.Hours.Close == "" &&
		len(c.Features.EnabledFlags()) == 0
}

// FromValues parses filter criteria from URL query arguments. List arguments
// may be repeated or comma separated.
func FromValues(vals url.Values) (FilterCriteria, error) {
	var c FilterCriteria
	var err error

	c.Query = strings.TrimSpace(vals.Get(QUERY_ARG))
	c.Location = strings.TrimSpace(vals.Get(LOCATION_ARG))
	c.Amenities = splitList(vals[AMENITIES_ARG])
	c.Tags = splitList(vals[TAGS_ARG])

	if c.MinPrice, err = parseOptFloat(vals, MIN_PRICE_ARG); err != nil {
		return c, err
	}
	if c.MaxPrice, err = parseOptFloat(vals, MAX_PRICE_ARG); err != nil {
		return c, err
	}
	if c.MinRating, err = parseOptFloat(vals, MIN_RATING_ARG); err != nil {
		return c, err
	}
	if s := vals.Get(MIN_CAPACITY_ARG); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return c, fmt.Errorf("invalid argument %s: %w", MIN_CAPACITY_ARG, err)
		}
		c.MinCapacity = &n
	}
	if c.Hours.Open, err = venue.NormalizeClock(vals.Get(OPEN_ARG)); err != nil {
		return c, fmt.Errorf("invalid argument %s: %w", OPEN_ARG, err)
	}
	if c.Hours.Close, err = venue.NormalizeClock(vals.Get(CLOSE_ARG)); err != nil {
		return c, fmt.Errorf("invalid argument %s: %w", CLOSE_ARG, err)
	}
	for _, name := range splitList(vals[FEATURES_ARG]) {
		if !c.Features.SetFlag(name) {
			return c, fmt.Errorf("invalid argument %s: unknown feature %q", FEATURES_ARG, name)
		}
	}
	return c, nil
}

// ToValues renders the criteria as URL query arguments, omitting zero values.
func (c FilterCriteria) ToValues() url.Values {
	q := url.Values{}

	if c.Query != "" {
		q.Set(QUERY_ARG, c.Query)
	}
	if c.Location != "" {
		q.Set(LOCATION_ARG, c.Location)
	}
	if a := nonBlank(c.Amenities); len(a) > 0 {
		q.Set(AMENITIES_ARG, strings.Join(a, ","))
	}
	if t := nonBlank(c.Tags); len(t) > 0 {
		q.Set(TAGS_ARG, strings.Join(t, ","))
	}
	if c.MinPrice != nil {
		q.Set(MIN_PRICE_ARG, ftoa(*c.MinPrice))
	}
	if c.MaxPrice != nil {
		q.Set(MAX_PRICE_ARG, ftoa(*c.MaxPrice))
	}
	if c.MinRating != nil {
		q.Set(MIN_RATING_ARG, ftoa(*c.MinRating))
	}
	if c.MinCapacity != nil {
		q.Set(MIN_CAPACITY_ARG, strconv.Itoa(*c.MinCapacity))
	}
	if c.Hours.Open != "" {
		q.Set(OPEN_ARG, c.Hours.Open)
	}
	if c.Hours.Close != "" {
		q.Set(CLOSE_ARG, c.Hours.Close)
	}
	if f := c.Features.EnabledFlags(); len(f) > 0 {
		q.Set(FEATURES_ARG, strings.Join(f, ","))
	}
	return q
}

func parseOptFloat(vals url.Values, name string) (*float64, error) {
	s := vals.Get(name)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid argument %s: %w", name, err)
	}
	return &f, nil
}

func splitList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, s := range strings.Split(r, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func nonBlank(ss []string) []string {
	var out []string
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
