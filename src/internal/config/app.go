package config

import (
	"moving-service/src/internal/delivery/http"
	"moving-service/src/internal/delivery/http/middleware"
	"moving-service/src/internal/delivery/http/route"
	"moving-service/src/internal/gateway/geo"
	"moving-service/src/internal/gateway/messaging"
	"moving-service/src/internal/repository"
	"moving-service/src/internal/usecase"
	"moving-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "moving-service/src/pkg/kafka/confluent"
	"moving-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkgConfluent.Producer
	Redis       redis.UniversalClient
	Geoservice  *GeoService
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories and gateways
	orderRepository := repository.NewOrderRepository(config.DB)
	geocoder := geo.NewMapsGeocoder(config.Geoservice.Client, config.Log)
	router := geo.NewMapsRouter(config.Geoservice.Client, config.Log)

	var orderProducer messaging.OrderEventPublisher
	if config.Producer != nil {
		orderProducer = messaging.NewOrderProducer(config.Producer, config.Log)
	}

	pricingEngine := NewPricingEngine(config.Config)

	// setup use cases
	bookingUseCase := usecase.NewBookingUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		config.Config,
		config.Redis,
		geocoder,
		router,
		pricingEngine,
		orderProducer,
		config.AsynqClient,
	)

	orderUseCase := usecase.NewOrderUseCase(
		config.Log,
		config.Validate,
		orderRepository,
	)

	// setup controllers
	bookingController := http.NewBookingController(bookingUseCase, config.Log)
	orderController := http.NewOrderController(orderUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	config.Async.HandleFunc(usecase.TypeOrderReceipt, bookingUseCase.ProcessReceiptTask)

	routeConfig := route.RouteConfig{
		App:               config.App,
		BookingController: bookingController,
		OrderController:   orderController,
		AuthMiddleware:    authMiddleware,
	}
	routeConfig.Setup()
}
