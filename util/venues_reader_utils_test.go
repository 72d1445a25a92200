package util

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-server/models/review"
	"booking-server/models/venue"
)

func createTempFile(t *testing.T, pattern, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp(t.TempDir(), pattern)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tempFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadVenues_JSON(t *testing.T) {
	content := `[
		{
			"id": 1,
			"name": "Test Venue",
			"city": "Portland",
			"pricePerHour": 4.5,
			"tags": ["Coffee Shop"],
			"hours": {"monday": {"open": "7:00", "close": 19}},
			"features": {"hasWifi": true}
		}
	]`
	path := createTempFile(t, "venues*.json", content)

	venues, err := ReadVenues(path)

	require.NoError(t, err)
	require.Len(t, venues, 1)
	v := venues[0]
	assert.Equal(t, 1, v.ID)
	assert.Equal(t, "Test Venue", v.Name)
	assert.Equal(t, 4.5, v.PricePerHour)
	assert.Equal(t, venue.DayHours{Open: "07:00", Close: "19:00"}, v.Hours[venue.Monday])
	assert.True(t, v.Features.HasWifi)
	assert.False(t, v.Features.HasParking)
}

func TestReadVenues_YAML(t *testing.T) {
	content := `
- id: 2
  name: YAML Venue
  city: Denver
  state: CO
  pricePerHour: 6.25
  amenities: [WiFi, Parking]
  hours:
    monday: {open: "08:00", close: "21:30"}
    tuesday: {open: 8, close: 17.5}
  features:
    hasParking: true
`
	path := createTempFile(t, "venues*.yaml", content)

	venues, err := ReadVenues(path)

	require.NoError(t, err)
	require.Len(t, venues, 1)
	v := venues[0]
	assert.Equal(t, "YAML Venue", v.Name)
	assert.Equal(t, []string{"WiFi", "Parking"}, v.Amenities)
	assert.Equal(t, venue.DayHours{Open: "08:00", Close: "21:30"}, v.Hours[venue.Monday])
	assert.Equal(t, venue.DayHours{Open: "08:00", Close: "17:30"}, v.Hours[venue.Tuesday])
	assert.True(t, v.Features.HasParking)
}

func TestReadVenues_UnsupportedExtension(t *testing.T) {
	path := createTempFile(t, "venues*.csv", "id,name")

	_, err := ReadVenues(path)
	assert.Error(t, err)
}

func TestReadVenues_MissingFile(t *testing.T) {
	_, err := ReadVenues(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReadVenuesFromJSON_BadHours(t *testing.T) {
	path := createTempFile(t, "venues*.json", `[{"id": 1, "hours": {"monday": {"open": "7am"}}}]`)

	_, err := ReadVenuesFromJSON(path)
	assert.Error(t, err)
}

func TestReadReviewsFromJSON(t *testing.T) {
	content := `[{"id": "r1", "venueId": 3, "rating": 4.5, "categories": {"wifi": 4}}]`
	path := createTempFile(t, "reviews*.json", content)

	reviews, err := ReadReviewsFromJSON(path)

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 3, reviews[0].VenueID)
	assert.Equal(t, 4, reviews[0].Categories[review.CategoryWifi])
}

func TestBundledResources(t *testing.T) {
	venues, err := ReadVenues(filepath.Join("..", "resources", "venues.json"))
	require.NoError(t, err)
	require.NotEmpty(t, venues)
	for _, v := range venues {
		assert.NoError(t, v.Validate())
	}

	reviews, err := ReadReviewsFromJSON(filepath.Join("..", "resources", "reviews.json"))
	require.NoError(t, err)
	for _, r := range reviews {
		assert.NoError(t, r.Validate())
	}
}

func TestPlotRatingDistribution(t *testing.T) {
	s := review.NewSummary()
	s.Count = 3
	s.Average = 4
	s.Distribution[5] = 1
	s.Distribution[4] = 1
	s.Distribution[3] = 1
	s.CategoryAverages[review.CategoryWifi] = 4.5

	var buf bytes.Buffer
	err := PlotRatingDistribution(&buf, "Brew & Work", s)

	require.NoError(t, err)
	html := buf.String()
	assert.True(t, strings.Contains(html, "<html"), "expected an HTML document")
	assert.Contains(t, html, "Category averages")
}
