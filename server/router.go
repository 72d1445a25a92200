package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueRoutes is implemented by handlers.VenueHandler.
type VenueRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
	GetVenues(w http.ResponseWriter, r *http.Request)
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
}

// ReviewRoutes is implemented by handlers.ReviewHandler.
type ReviewRoutes interface {
	GetReviews(w http.ResponseWriter, r *http.Request)
	PostReview(w http.ResponseWriter, r *http.Request)
	GetReviewsSummary(w http.ResponseWriter, r *http.Request)
	GetReviewsChart(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler  VenueRoutes
	reviewHandler ReviewRoutes
	router        *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	venueHandler VenueRoutes,
	reviewHandler ReviewRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:  venueHandler,
		reviewHandler: reviewHandler,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={radius km(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")
	r.router.HandleFunc("/v1/venues", r.venueHandler.GetVenues).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}", r.venueHandler.GetVenue).Methods("GET")

	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/reviews", r.reviewHandler.GetReviews).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/reviews", r.reviewHandler.PostReview).Methods("POST")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/reviews/summary", r.reviewHandler.GetReviewsSummary).Methods("GET")
	r.router.HandleFunc("/v1/venues/{id:[0-9]+}/reviews/chart", r.reviewHandler.GetReviewsChart).Methods("GET")
}
