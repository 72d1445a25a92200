package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-server/models"
	"booking-server/models/venue"
)

func f64(f float64) *float64 { return &f }
func intp(i int) *int        { return &i }

func testVenues() []venue.Venue {
	return []venue.Venue{
		{
			ID:           1,
			Name:         "Brew & Work",
			Description:  "A cozy coffee shop with fast internet",
			City:         "San Francisco",
			State:        "CA",
			ZipCode:      "94103",
			Rating:       4.8,
			PricePerHour: 4.75,
			Amenities:    []string{"WiFi", "Coffee", "Power Outlets"},
			Capacity:     30,
			Tags:         []string{"Coffee Shop"},
			Hours: map[string]venue.DayHours{
				venue.Monday: {Open: "07:00", Close: "20:00"},
			},
			Features: venue.Features{HasWifi: true, HasCoffee: true, HasPower: true},
		},
		{
			ID:           2,
			Name:         "The Hub",
			Description:  "Modern co-working space with meeting rooms",
			City:         "Oakland",
			State:        "CA",
			ZipCode:      "94612",
			Rating:       4.5,
			PricePerHour: 6.50,
			Amenities:    []string{"WiFi", "Parking", "Meeting Rooms"},
			Capacity:     80,
			Tags:         []string{"Co-working Space"},
			Hours: map[string]venue.DayHours{
				venue.Monday: {Open: "08:00", Close: "22:00"},
			},
			Features: venue.Features{HasWifi: true, HasMeetingRooms: true, HasParking: true},
		},
		{
			ID:           3,
			Name:         "Quiet Pages",
			Description:  "Public library reading room",
			City:         "Austin",
			State:        "TX",
			ZipCode:      "78701",
			Rating:       4.1,
			PricePerHour: 0,
			Amenities:    []string{"Free WiFi"},
			Capacity:     12,
			Tags:         []string{"Library"},
			Features:     venue.Features{HasWifi: true, HasQuietSpace: true, IsAccessible: true},
		},
	}
}

func ids(vs []venue.Venue) []int {
	out := make([]int, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}

func TestFilterVenues_EmptyCriteriaReturnsCatalog(t *testing.T) {
	venues := testVenues()
	got := FilterVenues(venues, models.FilterCriteria{})
	assert.Equal(t, venues, got)
}

func TestFilterVenues_Criteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria models.FilterCriteria
		want     []int
	}{
		{"query matches name case-insensitively", models.FilterCriteria{Query: "brew"}, []int{1}},
		{"query matches description", models.FilterCriteria{Query: "MEETING"}, []int{2}},
		{"query without match", models.FilterCriteria{Query: "sauna"}, []int{}},
		{"location matches city", models.FilterCriteria{Location: "oak"}, []int{2}},
		{"location matches state", models.FilterCriteria{Location: "ca"}, []int{1, 2}},
		{"location matches partial zip", models.FilterCriteria{Location: "787"}, []int{3}},
		{"amenities require all", models.FilterCriteria{Amenities: []string{"WiFi", "Parking"}}, []int{2}},
		{"amenity substring", models.FilterCriteria{Amenities: []string{"wifi"}}, []int{1, 2, 3}},
		{"blank amenity ignored", models.FilterCriteria{Amenities: []string{" "}}, []int{1, 2, 3}},
		{"price range", models.FilterCriteria{MinPrice: f64(5), MaxPrice: f64(10)}, []int{2}},
		{"price lower bound inclusive", models.FilterCriteria{MinPrice: f64(4.75)}, []int{1, 2}},
		{"price upper bound inclusive", models.FilterCriteria{MaxPrice: f64(4.75)}, []int{1, 3}},
		{"inverted price range", models.FilterCriteria{MinPrice: f64(10), MaxPrice: f64(5)}, []int{}},
		{"min rating", models.FilterCriteria{MinRating: f64(4.5)}, []int{1, 2}},
		{"min capacity", models.FilterCriteria{MinCapacity: intp(30)}, []int{1, 2}},
		{"tags need any", models.FilterCriteria{Tags: []string{"Library", "Bar"}}, []int{3}},
		{"tags are case-insensitive", models.FilterCriteria{Tags: []string{"coffee shop"}}, []int{1}},
		{"opening by", models.FilterCriteria{Hours: models.HoursFilter{Open: "07:30"}}, []int{1}},
		{"closing after", models.FilterCriteria{Hours: models.HoursFilter{Close: "21:00"}}, []int{2}},
		{"open window", models.FilterCriteria{Hours: models.HoursFilter{Open: "08:00", Close: "20:00"}}, []int{1, 2}},
		{"features require true flags", models.FilterCriteria{Features: venue.Features{HasWifi: true, HasQuietSpace: true}}, []int{3}},
		{"combined groups", models.FilterCriteria{Location: "CA", Amenities: []string{"wifi"}, MinRating: f64(4.6)}, []int{1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FilterVenues(testVenues(), test.criteria)
			assert.Equal(t, test.want, ids(got))
		})
	}
}

func TestFilterVenues_Idempotent(t *testing.T) {
	criteria := []models.FilterCriteria{
		{},
		{Location: "ca", Amenities: []string{"WiFi"}},
		{Tags: []string{"Library", "Coffee Shop"}, MaxPrice: f64(5)},
		{Hours: models.HoursFilter{Open: "08:00"}, Features: venue.Features{HasWifi: true}},
	}
	for _, c := range criteria {
		once := FilterVenues(testVenues(), c)
		twice := FilterVenues(once, c)
		assert.Equal(t, once, twice)
	}
}

func TestFilterVenues_TwoVenueExample(t *testing.T) {
	venues := []venue.Venue{
		{ID: 1, Name: "A", PricePerHour: 4.75, Rating: 4.8, Tags: []string{"Coffee Shop"}},
		{ID: 2, Name: "B", PricePerHour: 6.50, Rating: 4.5, Tags: []string{"Co-working Space"}},
	}

	byPrice := FilterVenues(venues, models.FilterCriteria{MinPrice: f64(5), MaxPrice: f64(10)})
	assert.Equal(t, []int{2}, ids(byPrice))

	byTags := FilterVenues(venues, models.FilterCriteria{Tags: []string{"Coffee Shop", "Co-working Space"}})
	assert.Equal(t, []int{1, 2}, ids(byTags))
}

func TestFilterVenues_MissingMondayHours(t *testing.T) {
	venues := []venue.Venue{{ID: 7, Name: "Weekend Only", Hours: map[string]venue.DayHours{
		venue.Saturday: {Open: "06:00", Close: "23:00"},
	}}}
	got := FilterVenues(venues, models.FilterCriteria{Hours: models.HoursFilter{Open: "09:00"}})
	assert.Empty(t, got)
}

func TestFilterVenues_UnpaddedHours(t *testing.T) {
	venues := []venue.Venue{
		{ID: 1, Name: "Late Opener", Hours: map[string]venue.DayHours{venue.Monday: {Open: "10:00", Close: "18:00"}}},
		{ID: 2, Name: "Early Bird", Hours: map[string]venue.DayHours{venue.Monday: {Open: "09:00", Close: "18:00"}}},
	}

	got := FilterVenues(venues, models.FilterCriteria{Hours: models.HoursFilter{Open: "9:30"}})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("Expected only venue 2 for open by 9:30, got %v", got)
	}

	got = FilterVenues(venues, models.FilterCriteria{Hours: models.HoursFilter{Open: " 9:00 ", Close: "18:00"}})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("Expected only venue 2 for 9:00-18:00, got %v", got)
	}
}

func TestFilterVenues_EmptyCatalog(t *testing.T) {
	got := FilterVenues(nil, models.FilterCriteria{Query: "anything"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNewVenueCatalog_DropsDuplicateIDs(t *testing.T) {
	venues := append(testVenues(), venue.Venue{ID: 1, Name: "Impostor"})
	c := NewVenueCatalog(venues)

	require.Equal(t, 3, c.Len())
	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Brew & Work", v.Name)

	_, ok = c.Get(42)
	assert.False(t, ok)
}

func TestVenueCatalog_FilterDoesNotMutate(t *testing.T) {
	c := NewVenueCatalog(testVenues())
	_ = c.Filter(models.FilterCriteria{Tags: []string{"Library"}})

	got := c.Venues()
	assert.Equal(t, []int{1, 2, 3}, ids(got))

	got[0].Name = "changed"
	v, _ := c.Get(1)
	assert.Equal(t, "Brew & Work", v.Name)
}
