package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/rs/cors"

	"booking-server/config"
)

type BookingHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	cfg       config.Config

	registerOnce sync.Once
}

func NewBookingHttpServer(router *Router, muxRouter *mux.Router, cfg config.Config) *BookingHttpServer {
	return &BookingHttpServer{
		router:    router,
		muxRouter: muxRouter,
		cfg:       cfg,
	}
}

// Handler registers the routes and returns the full middleware stack.
func (s *BookingHttpServer) Handler() http.Handler {
	s.registerOnce.Do(s.router.RegisterRoutes)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})

	standardMiddleware := alice.New(recoverPanic, logRequest, secureHeaders, c.Handler)
	return standardMiddleware.Then(s.muxRouter)
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *BookingHttpServer) Start() {
	srv := &http.Server{
		Addr:         s.cfg.HTTPAddr,
		Handler:      s.Handler(),
		ReadTimeout:  config.HTTP_READ_TIMEOUT,
		WriteTimeout: config.HTTP_WRITE_TIMEOUT,
		IdleTimeout:  config.HTTP_IDLE_TIMEOUT,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		log.Printf("[BookingHttpServer] Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	log.Println("[BookingHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.HTTP_SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[BookingHttpServer] Server exiting")
}
