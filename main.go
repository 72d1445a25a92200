package main

import (
	"context"
	"log"

	"booking-server/config"
	"booking-server/di"
	"booking-server/util"
)

func main() {
	cfg := config.Load()

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("[MAIN] Failed to initialize container: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Println("[MAIN] Refreshing catalog")
	if n, err := container.CatalogRefresherService.RefreshCatalog(); err != nil {
		log.Printf("[MAIN] Initial catalog refresh failed: %v", err)
		if n, err := container.CatalogRefresherService.RestoreCatalog(); err != nil {
			log.Printf("[MAIN] No stored catalog to fall back to: %v", err)
		} else {
			log.Printf("[MAIN] Restored %d venues from redis", n)
		}
	} else {
		log.Printf("[MAIN] Catalog loaded with %d venues", n)
	}

	if cfg.ReviewsResource != "" {
		seed, err := util.ReadReviewsFromJSON(cfg.ReviewsResource)
		if err != nil {
			log.Printf("[MAIN] Skipping review seed: %v", err)
		} else if _, err := container.ReviewService.SeedReviews(seed); err != nil {
			log.Printf("[MAIN] Review seed failed: %v", err)
		}
	}

	if err := container.ReviewService.LoadSummaries(ctx, container.VenueService.VenueIDs()); err != nil {
		log.Fatalf("[MAIN] Failed to load review summaries: %v", err)
	}

	log.Println("[MAIN] Starting periodic catalog refresher")
	container.CatalogRefresherService.StartPeriodicJob(ctx, cfg.RefreshInterval)

	container.BookingHttpServer.Start()
}
