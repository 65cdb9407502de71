package server

import (
	"net/http"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"droscher.com/BreweryDirectory/configs"
)

const ServiceName = "brewerydirectory.v1.BreweryService"

const corsMaxAge = 86400 // 24 hours

func NewRouter(breweryServer *BreweryServer, conf configs.Server) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(configureCORS(conf.AllowedOrigins))

	router.Route("/api", func(api chi.Router) {
		if conf.RequestsPerMinute > 0 {
			api.Use(httprate.LimitByIP(conf.RequestsPerMinute, time.Minute))
		}

		api.Use(instrument)

		api.Route("/breweries", func(breweries chi.Router) {
			breweries.Get("/", breweryServer.FindBreweries)
			breweries.Get("/{breweryID}", breweryServer.GetBrewery)
			breweries.Post("/{breweryID}/favorite", breweryServer.ToggleFavorite)
		})

		api.Get("/analytics/favorites", breweryServer.GetFavoritesAnalytics)
	})

	router.Handle("/metrics", promhttp.Handler())

	checker := grpchealth.NewStaticChecker(ServiceName)
	healthPath, healthHandler := grpchealth.NewHandler(checker)
	router.Handle(healthPath+"*", healthHandler)

	return router
}

func configureCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodHead},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"x-request-id",
		},
		MaxAge:             corsMaxAge,
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	return corsOpts.Handler
}
