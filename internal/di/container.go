package di

import (
	"github.com/jenniferhuangg/ConcertCloud/internal/handler"
	"github.com/jenniferhuangg/ConcertCloud/internal/ranking"
	"github.com/jenniferhuangg/ConcertCloud/internal/repository"
	"github.com/jenniferhuangg/ConcertCloud/internal/service"
	"github.com/jenniferhuangg/ConcertCloud/internal/worker"
	"github.com/jenniferhuangg/ConcertCloud/pkg/database"
	"github.com/jenniferhuangg/ConcertCloud/pkg/redis"
)

// Container holds all dependencies for the service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	VenueRepo        repository.VenueRepository
	ArtistRepo       repository.ArtistRepository
	EventRepo        repository.EventRepository
	ListingRepo      repository.ListingRepository
	WatchRepo        repository.WatchlistRepository
	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository

	// Services
	VenueService   service.VenueService
	EventService   service.EventService
	ListingService service.ListingService
	WatchService   service.WatchService
	ScanService    service.ScanService

	// Workers
	ScanWorker *worker.WatchScanWorker

	// Handlers
	HealthHandler *handler.HealthHandler
	EventHandler  *handler.EventHandler
	WatchHandler  *handler.WatchHandler
	AdminHandler  *handler.AdminHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB         *database.PostgresDB
	Redis      *redis.Client
	Weights    ranking.Weights
	ScanWorker *worker.WatchScanWorkerConfig
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	weights := cfg.Weights
	if err := weights.Validate(); err != nil {
		weights = ranking.DefaultWeights()
	}

	// Initialize repositories
	c.VenueRepo = repository.NewPostgresVenueRepository(c.DB.Pool())
	c.ArtistRepo = repository.NewPostgresArtistRepository(c.DB.Pool())
	c.EventRepo = repository.NewPostgresEventRepository(c.DB.Pool())
	c.WatchRepo = repository.NewPostgresWatchlistRepository(c.DB.Pool())
	c.NotificationRepo = repository.NewPostgresNotificationRepository(c.DB.Pool())
	c.UserRepo = repository.NewPostgresUserRepository(c.DB.Pool())

	pgListingRepo := repository.NewPostgresListingRepository(c.DB.Pool())
	if c.Redis != nil {
		c.ListingRepo = repository.NewCachedListingRepository(pgListingRepo, c.Redis)
	} else {
		c.ListingRepo = pgListingRepo
	}

	// Initialize services
	c.VenueService = service.NewVenueService(c.VenueRepo)
	c.EventService = service.NewEventService(c.EventRepo, c.ArtistRepo, c.VenueRepo, c.ListingRepo, weights)
	c.ListingService = service.NewListingService(c.ListingRepo, c.EventRepo, c.VenueRepo, weights)
	c.WatchService = service.NewWatchService(c.WatchRepo, c.NotificationRepo, c.EventRepo, c.UserRepo)
	c.ScanService = service.NewScanService(c.WatchRepo, c.ListingRepo, c.NotificationRepo)

	// Initialize workers
	c.ScanWorker = worker.NewWatchScanWorker(c.ScanService, cfg.ScanWorker)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.EventHandler = handler.NewEventHandler(c.EventService, c.ListingService)
	c.WatchHandler = handler.NewWatchHandler(c.WatchService, c.ScanService)
	c.AdminHandler = handler.NewAdminHandler(c.VenueService, c.EventService, c.ListingService)

	return c
}
