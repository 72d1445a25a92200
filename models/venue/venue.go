package venue

import (
	"fmt"
	"strings"
)

// Venue is a bookable space listed in the catalog.
type Venue struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	Address     string      `json:"address" yaml:"address"`
	City        string      `json:"city" yaml:"city"`
	State       string      `json:"state" yaml:"state"`
	ZipCode     string      `json:"zipCode" yaml:"zipCode"`
	Country     string      `json:"country" yaml:"country"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`

	// Display fields; the review summary is authoritative.
	Rating      float64 `json:"rating" yaml:"rating"`
	ReviewCount int     `json:"reviewCount" yaml:"reviewCount"`

	PricePerHour      float64             `json:"pricePerHour" yaml:"pricePerHour"`
	Images            []string            `json:"images" yaml:"images"`
	Amenities         []string            `json:"amenities" yaml:"amenities"`
	Hours             map[string]DayHours `json:"hours" yaml:"hours"`
	Capacity          int                 `json:"capacity" yaml:"capacity"`
	Tags              []string            `json:"tags" yaml:"tags"`
	Features          Features            `json:"features" yaml:"features"`
	OrderingAvailable bool                `json:"orderingAvailable" yaml:"orderingAvailable"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%d, name=%s, city=%s, lat=%f, lng=%f)",
		v.ID, v.Name, v.City, v.Coordinates.Lat, v.Coordinates.Lng)
}

// Validate checks the catalog invariants of a single venue.
func (v *Venue) Validate() error {
	if v.ID <= 0 {
		return fmt.Errorf("venue id must be positive, got %d", v.ID)
	}
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("venue %d: name is required", v.ID)
	}
	if v.Rating < 0 || v.Rating > 5 {
		return fmt.Errorf("venue %d: rating %.2f outside [0,5]", v.ID, v.Rating)
	}
	if v.ReviewCount < 0 {
		return fmt.Errorf("venue %d: negative review count", v.ID)
	}
	if v.PricePerHour < 0 {
		return fmt.Errorf("venue %d: negative price per hour", v.ID)
	}
	if v.Capacity < 0 {
		return fmt.Errorf("venue %d: negative capacity", v.ID)
	}
	for day, h := range v.Hours {
		if !IsWeekday(day) {
			return fmt.Errorf("venue %d: unknown weekday %q", v.ID, day)
		}
		if err := h.Validate(); err != nil {
			return fmt.Errorf("venue %d: %s hours: %w", v.ID, day, err)
		}
	}
	return nil
}

// Features is the fixed set of boolean venue capabilities.
type Features struct {
	HasWifi           bool `json:"hasWifi" yaml:"hasWifi"`
	HasPower          bool `json:"hasPower" yaml:"hasPower"`
	HasFood           bool `json:"hasFood" yaml:"hasFood"`
	HasCoffee         bool `json:"hasCoffee" yaml:"hasCoffee"`
	HasQuietSpace     bool `json:"hasQuietSpace" yaml:"hasQuietSpace"`
	HasMeetingRooms   bool `json:"hasMeetingRooms" yaml:"hasMeetingRooms"`
	HasParking        bool `json:"hasParking" yaml:"hasParking"`
	IsAccessible      bool `json:"isAccessible" yaml:"isAccessible"`
	AllowsPets        bool `json:"allowsPets" yaml:"allowsPets"`
	HasOutdoorSeating bool `json:"hasOutdoorSeating" yaml:"hasOutdoorSeating"`
}

// Flags returns the features keyed by their JSON names.
func (f Features) Flags() map[string]bool {
	return map[string]bool{
		"hasWifi":           f.HasWifi,
		"hasPower":          f.HasPower,
		"hasFood":           f.HasFood,
		"hasCoffee":         f.HasCoffee,
		"hasQuietSpace":     f.HasQuietSpace,
		"hasMeetingRooms":   f.HasMeetingRooms,
		"hasParking":        f.HasParking,
		"isAccessible":      f.IsAccessible,
		"allowsPets":        f.AllowsPets,
		"hasOutdoorSeating": f.HasOutdoorSeating,
	}
}

// Satisfies reports whether every flag requested in want is also set on f.
// Flags that are false in want impose nothing.
func (f Features) Satisfies(want Features) bool {
	have := f.Flags()
	for name, requested := range want.Flags() {
		if requested && !have[name] {
			return false
		}
	}
	return true
}

// SetFlag turns on the named feature. It returns false for unknown names.
func (f *Features) SetFlag(name string) bool {
	switch strings.TrimSpace(name) {
	case "hasWifi":
		f.HasWifi = true
	case "hasPower":
		f.HasPower = true
	case "hasFood":
		f.HasFood = true
	case "hasCoffee":
		f.HasCoffee = true
	case "hasQuietSpace":
		f.HasQuietSpace = true
	case "hasMeetingRooms":
		f.HasMeetingRooms = true
	case "hasParking":
		f.HasParking = true
	case "isAccessible":
		f.IsAccessible = true
	case "allowsPets":
		f.AllowsPets = true
	case "hasOutdoorSeating":
		f.HasOutdoorSeating = true
	default:
		return false
	}
	return true
}

// EnabledFlags returns the names of the flags set on f, in declaration order.
func (f Features) EnabledFlags() []string {
	var out []string
	flags := f.Flags()
	for _, name := range FeatureNames {
		if flags[name] {
			out = append(out, name)
		}
	}
	return out
}

// FeatureNames lists the feature flag names in declaration order.
var FeatureNames = []string{
	"hasWifi",
	"hasPower",
	"hasFood",
	"hasCoffee",
	"hasQuietSpace",
	"hasMeetingRooms",
	"hasParking",
	"isAccessible",
	"allowsPets",
	"hasOutdoorSeating",
}
