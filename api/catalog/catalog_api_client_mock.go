package catalog

import (
	"log"

	venuecatalog "booking-server/catalog"
	"booking-server/models"
	"booking-server/models/venue"
	"booking-server/util"
)

// CatalogApiClientMock serves the catalog from a seed file on disk.
type CatalogApiClientMock struct {
	path string
}

func NewCatalogApiClientMock(path string) *CatalogApiClientMock {
	return &CatalogApiClientMock{path: path}
}

func (c *CatalogApiClientMock) GetVenues() ([]venue.Venue, error) {
	venues, err := util.ReadVenues(c.path)
	if err != nil {
		log.Printf("[CatalogApiClientMock] Could not read venues from %s: %v", c.path, err)
		return nil, err
	}
	return venues, nil
}

func (c *CatalogApiClientMock) FilterVenues(criteria models.FilterCriteria) ([]venue.Venue, error) {
	venues, err := c.GetVenues()
	if err != nil {
		return nil, err
	}
	return venuecatalog.FilterVenues(venues, criteria), nil
}
