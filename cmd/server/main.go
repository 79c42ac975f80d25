package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/adapters/repositories"
	"trip-itinerary-service/internal/adapters/routing"
	"trip-itinerary-service/internal/adapters/tripstate"
	"trip-itinerary-service/internal/api"
	"trip-itinerary-service/internal/config"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, OSRM) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/places.json")
	port := config.Get("PORT", "8080")
	osrmBase := config.Get("OSRM_BASE_URL", "")
	redisAddr := os.Getenv("REDIS_ADDR")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the place catalog on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	// The routing provider consults a persistent route cache to avoid
	// repeated calls against the public OSRM endpoint. Redis when
	// configured, the local SQLite file otherwise.
	var routeCache ports.RouteCache
	if redisAddr != "" {
		routeCache = cache.NewRedisRouteCache(redis.NewClient(&redis.Options{Addr: redisAddr}))
		log.Printf("route cache backend=redis addr=%s", redisAddr)
	} else {
		routeCache = cache.NewSqliteRouteCache(db)
		log.Printf("route cache backend=sqlite path=%s", dbPath)
	}

	provider := routing.NewOSRMProvider(osrmBase, routeCache)
	estimator := services.NewEstimator(provider)
	legs := services.NewLegCache(estimator)
	store := tripstate.NewSqliteTripStore(db)

	controller := services.NewController(legs, store)
	if label := os.Getenv("TRIP_ORIGIN_LABEL"); label != "" {
		controller.SetOrigin(label, originCoords())
	}

	catalog := repositories.NewSqlitePlaceRepository(db)
	router := api.NewRouter(controller, estimator, catalog)

	// Timeouts are tuned for cold-cache leg recomputation (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// originCoords reads the optional trip-level origin position from the
// environment. Either both values parse or the origin has no coordinates.
func originCoords() *domain.Coordinates {
	lat, errLat := strconv.ParseFloat(os.Getenv("TRIP_ORIGIN_LAT"), 64)
	lng, errLng := strconv.ParseFloat(os.Getenv("TRIP_ORIGIN_LNG"), 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	return &domain.Coordinates{Lat: lat, Lng: lng}
}
