package catalog

import (
	"fmt"

	"booking-server/api"
	"booking-server/models"
	"booking-server/models/venue"
)

const VENUES_ENDPOINT = "/v1/venues"

// CatalogApiClient reads venues from a remote catalog feed over HTTP.
type CatalogApiClient struct {
	*api.HTTPClient
}

func NewCatalogApiClient(httpClient *api.HTTPClient) *CatalogApiClient {
	return &CatalogApiClient{
		HTTPClient: httpClient,
	}
}

// GetVenues retrieves the full remote catalog.
func (c *CatalogApiClient) GetVenues() ([]venue.Venue, error) {
	return c.FilterVenues(models.FilterCriteria{})
}

// FilterVenues lets the remote side apply the criteria.
func (c *CatalogApiClient) FilterVenues(criteria models.FilterCriteria) ([]venue.Venue, error) {
	var response models.VenueListResponse
	err := c.RequestWithQuery("GET", VENUES_ENDPOINT, criteria.ToValues(), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	if response.Status != models.STATUS_OK {
		return nil, fmt.Errorf("catalog feed returned status %q", response.Status)
	}
	return response.Venues, nil
}
