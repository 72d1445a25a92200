package venue

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// Weekdays lists the seven keys of Venue.Hours in calendar order.
var Weekdays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// DayHours holds a venue's opening window for one weekday as zero-padded
// 24-hour "HH:MM" strings, so plain string comparison orders them in time.
type DayHours struct {
	Open  string `json:"open" yaml:"open"`
	Close string `json:"close" yaml:"close"`
}

// Validate checks both ends are empty or well-formed "HH:MM".
func (d DayHours) Validate() error {
	for _, s := range []string{d.Open, d.Close} {
		if s == "" {
			continue
		}
		if n, err := NormalizeClock(s); err != nil || n != s {
			return fmt.Errorf("invalid time %q", s)
		}
	}
	return nil
}

// UnmarshalJSON accepts "9:00", "09:00" or a numeric hour (9, 17.5) for each
// end and stores the normalized "HH:MM" form.
func (d *DayHours) UnmarshalJSON(data []byte) error {
	var aux struct {
		Open  interface{} `json:"open"`
		Close interface{} `json:"close"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	return d.fill(aux.Open, aux.Close)
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML seed catalogs.
func (d *DayHours) UnmarshalYAML(node *yaml.Node) error {
	var aux struct {
		Open  interface{} `yaml:"open"`
		Close interface{} `yaml:"close"`
	}
	if err := node.Decode(&aux); err != nil {
		return err
	}
	return d.fill(aux.Open, aux.Close)
}

func (d *DayHours) fill(openVal, closeVal interface{}) error {
	o, err := clockFromAny(openVal)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	c, err := clockFromAny(closeVal)
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}
	d.Open, d.Close = o, c
	return nil
}

func clockFromAny(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return NormalizeClock(val)
	case float64:
		return clockFromHours(val)
	case int:
		return clockFromHours(float64(val))
	default:
		return "", fmt.Errorf("unsupported time value %v", v)
	}
}

func clockFromHours(h float64) (string, error) {
	if h < 0 || h > 24 {
		return "", fmt.Errorf("hour %v out of range", h)
	}
	total := int(math.Round(h * 60))
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// NormalizeClock turns "H:MM" or "HH:MM" into zero-padded "HH:MM".
// "24:00" is accepted as an end-of-day close. An empty string stays empty.
func NormalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return "", fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) > 2 {
		return "", fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", fmt.Errorf("invalid minutes in %q", s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return "", fmt.Errorf("time %q out of range", s)
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}
