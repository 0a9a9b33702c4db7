package di

import (
	"github.com/sashabryl/train-station-api-service/internal/handler"
	"github.com/sashabryl/train-station-api-service/internal/repository"
	"github.com/sashabryl/train-station-api-service/internal/service"
	"github.com/sashabryl/train-station-api-service/pkg/database"
	"github.com/sashabryl/train-station-api-service/pkg/redis"
)

// Container holds all dependencies for the API
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	TrainTypeRepo repository.TrainTypeRepository
	TrainRepo     repository.TrainRepository
	StationRepo   repository.StationRepository
	RouteRepo     repository.RouteRepository
	CrewRepo      repository.CrewRepository
	JourneyRepo   repository.JourneyRepository
	OrderRepo     repository.OrderRepository

	// Services
	TrainTypeService service.TrainTypeService
	TrainService     service.TrainService
	StationService   service.StationService
	RouteService     service.RouteService
	CrewService      service.CrewService
	JourneyService   service.JourneyService
	OrderService     service.OrderService

	// Handlers
	HealthHandler    *handler.HealthHandler
	TrainTypeHandler *handler.TrainTypeHandler
	TrainHandler     *handler.TrainHandler
	StationHandler   *handler.StationHandler
	RouteHandler     *handler.RouteHandler
	CrewHandler      *handler.CrewHandler
	JourneyHandler   *handler.JourneyHandler
	OrderHandler     *handler.OrderHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB          *database.PostgresDB
	Redis       *redis.Client
	Publisher   service.EventPublisher
	ServiceName string
	Version     string
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	// Initialize repositories
	c.TrainTypeRepo = repository.NewPostgresTrainTypeRepository(c.DB.Pool())
	c.TrainRepo = repository.NewPostgresTrainRepository(c.DB.Pool())

	pgStationRepo := repository.NewPostgresStationRepository(c.DB.Pool())
	if c.Redis != nil {
		c.StationRepo = repository.NewCachedStationRepository(pgStationRepo, c.Redis)
	} else {
		c.StationRepo = pgStationRepo
	}

	c.RouteRepo = repository.NewPostgresRouteRepository(c.DB.Pool())
	c.CrewRepo = repository.NewPostgresCrewRepository(c.DB.Pool())
	c.JourneyRepo = repository.NewPostgresJourneyRepository(c.DB.Pool())
	c.OrderRepo = repository.NewPostgresOrderRepository(c.DB.Pool())

	// Initialize services
	c.TrainTypeService = service.NewTrainTypeService(c.TrainTypeRepo)
	c.TrainService = service.NewTrainService(c.TrainRepo, c.TrainTypeRepo)
	c.StationService = service.NewStationService(c.StationRepo)
	c.RouteService = service.NewRouteService(c.RouteRepo, c.StationRepo)
	c.CrewService = service.NewCrewService(c.CrewRepo)
	c.JourneyService = service.NewJourneyService(c.JourneyRepo, c.RouteRepo, c.TrainRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, cfg.Publisher)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis, cfg.ServiceName, cfg.Version)
	c.TrainTypeHandler = handler.NewTrainTypeHandler(c.TrainTypeService)
	c.TrainHandler = handler.NewTrainHandler(c.TrainService)
	c.StationHandler = handler.NewStationHandler(c.StationService)
	c.RouteHandler = handler.NewRouteHandler(c.RouteService)
	c.CrewHandler = handler.NewCrewHandler(c.CrewService)
	c.JourneyHandler = handler.NewJourneyHandler(c.JourneyService)
	c.OrderHandler = handler.NewOrderHandler(c.OrderService)

	return c
}
