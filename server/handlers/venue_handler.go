package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"booking-server/models"
	services "booking-server/service"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
)

type VenueHandler struct {
	venueService *services.VenueService
}

func NewVenueHandler(venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// GetVenues handles GET /v1/venues, filtering the catalog by query args.
func (h *VenueHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	criteria, err := models.FromValues(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	venues := h.venueService.FilterVenues(criteria)

	// Only echo criteria that actually narrowed the listing.
	var echo *models.FilterCriteria
	if !criteria.IsEmpty() {
		echo = &criteria
	}
	writeJSON(w, http.StatusOK, models.NewVenueListResponse(venues, echo))
}

// GetVenuesNearby handles GET /v1/venues/nearby?lat=&lon=&radius= (radius in km).
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lon, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	venues, err := h.venueService.GetVenuesNearby(lat, lon, radius)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.NewVenueListResponse(venues, nil))
}

// GetVenue handles GET /v1/venues/{id}.
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := venueIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.venueService.GetVenue(id)
	if errors.Is(err, services.ErrVenueNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *VenueHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lon, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil || lat < -90 || lat > 90 {
		writeError(w, http.StatusBadRequest, "Invalid argument "+LAT_QUERY_ARG)
		return
	}
	lon, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil || lon < -180 || lon > 180 {
		writeError(w, http.StatusBadRequest, "Invalid argument "+LON_QUERY_ARG)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil || radius <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid argument "+RADIUS_QUERY_ARG)
		return
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}
