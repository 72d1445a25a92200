package catalog

import (
	"booking-server/models"
	"booking-server/models/venue"
)

// CatalogAPI is a source of venue records for the catalog.
type CatalogAPI interface {
	GetVenues() ([]venue.Venue, error)
	FilterVenues(criteria models.FilterCriteria) ([]venue.Venue, error)
}
