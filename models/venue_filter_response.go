// models/venue_filter_response.go
package models

import "booking-server/models/venue"

const STATUS_OK = "OK"

// VenueListResponse is the envelope returned by the venue listing endpoints
// and consumed by remote catalog clients.
type VenueListResponse struct {
	Status   string          `json:"status"`
	Venues   []venue.Venue   `json:"venues"`
	VenuesN  int             `json:"venues_n"`
	Criteria *FilterCriteria `json:"criteria,omitempty"`
}

func NewVenueListResponse(venues []venue.Venue, criteria *FilterCriteria) VenueListResponse {
	if venues == nil {
		venues = []venue.Venue{}
	}
	return VenueListResponse{
		Status:   STATUS_OK,
		Venues:   venues,
		VenuesN:  len(venues),
		Criteria: criteria,
	}
}
