package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"booking-server/models/review"
	services "booking-server/service"
	"booking-server/util"
)

const maxReviewBodyBytes = 1 << 20

// ReviewRequest is the body of POST /v1/venues/{id}/reviews.
type ReviewRequest struct {
	Author     string         `json:"author"`
	Comment    string         `json:"comment"`
	Rating     *float64       `json:"rating"`
	Categories map[string]int `json:"categories"`
}

// ReviewCreatedResponse is returned after a review is accepted.
type ReviewCreatedResponse struct {
	Review  review.Review  `json:"review"`
	Summary review.Summary `json:"summary"`
}

type ReviewHandler struct {
	reviewService *services.ReviewService
	venueService  *services.VenueService
}

func NewReviewHandler(reviewService *services.ReviewService, venueService *services.VenueService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, venueService: venueService}
}

// GetReviews handles GET /v1/venues/{id}/reviews.
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := h.venueID(w, r)
	if !ok {
		return
	}
	list, err := h.reviewService.GetReviews(id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// PostReview handles POST /v1/venues/{id}/reviews.
func (h *ReviewHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	id, ok := h.venueID(w, r)
	if !ok {
		return
	}

	var req ReviewRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxReviewBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Rating == nil {
		writeError(w, http.StatusBadRequest, "rating is required")
		return
	}

	stored, summary, err := h.reviewService.AddReview(id, review.Review{
		Author:     req.Author,
		Comment:    req.Comment,
		Rating:     *req.Rating,
		Categories: req.Categories,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ReviewCreatedResponse{Review: stored, Summary: summary})
}

// GetReviewsSummary handles GET /v1/venues/{id}/reviews/summary.
func (h *ReviewHandler) GetReviewsSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.venueID(w, r)
	if !ok {
		return
	}
	summary, err := h.reviewService.GetSummary(id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GetReviewsChart handles GET /v1/venues/{id}/reviews/chart and renders the
// summary as an HTML page.
func (h *ReviewHandler) GetReviewsChart(w http.ResponseWriter, r *http.Request) {
	id, ok := h.venueID(w, r)
	if !ok {
		return
	}
	v, err := h.venueService.GetVenue(id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	summary, err := h.reviewService.GetSummary(id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := util.PlotRatingDistribution(&buf, v.Name, summary); err != nil {
		writeInternalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *ReviewHandler) venueID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := venueIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

func (h *ReviewHandler) writeServiceError(w http.ResponseWriter, err error) {
	var verr *review.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrVenueNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeInternalError(w, err)
	}
}
