package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"vocalwork/src/internal/delivery/http"
	"vocalwork/src/internal/delivery/http/middleware"
	"vocalwork/src/internal/delivery/http/route"
	"vocalwork/src/internal/gateway/messaging"
	"vocalwork/src/internal/recording"
	"vocalwork/src/internal/repository"
	"vocalwork/src/internal/usecase"
	kafkaPkgConfluent "vocalwork/src/pkg/kafka/confluent"
	"vocalwork/src/pkg/log"
)

type BootstrapConfig struct {
	Store            *repository.Store
	App              *fiber.App
	Log              log.Log
	Validate         *validator.Validate
	Config           *viper.Viper
	Producer         kafkaPkgConfluent.Producer
	Redis            redis.UniversalClient
	RecordingManager *recording.Manager
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	userRepository := repository.NewUserRepository(config.Store)
	jobRepository := repository.NewJobRepository(config.Store)
	transactionRepository := repository.NewTransactionRepository(config.Store)

	// setup gateways
	generationClient := NewGenerationClient(config.Config, config.Redis, config.Log)
	jobProducer := messaging.NewJobProducer(config.Producer, config.Log)

	// setup use cases
	authUseCase := usecase.NewAuthUseCase(config.Log, config.Validate, config.Store)
	userUseCase := usecase.NewUserUseCase(config.Log, config.Validate, userRepository, generationClient)
	walletUseCase := usecase.NewWalletUseCase(config.Log, userRepository, transactionRepository)
	jobUseCase := usecase.NewJobUseCase(
		config.Log,
		config.Validate,
		jobRepository,
		userRepository,
		generationClient,
		jobProducer,
	)
	recordingUseCase := usecase.NewRecordingUseCase(
		config.Log,
		config.Store,
		jobRepository,
		config.RecordingManager,
		jobUseCase,
	)

	// setup controllers
	authController := http.NewAuthController(authUseCase, config.Log)
	userController := http.NewUserController(userUseCase, walletUseCase, config.Log)
	jobController := http.NewJobController(jobUseCase, config.Log)
	recordingController := http.NewRecordingController(recordingUseCase, config.Log)

	routeConfig := route.RouteConfig{
		App:                 config.App,
		AuthController:      authController,
		UserController:      userController,
		JobController:       jobController,
		RecordingController: recordingController,
		SessionMiddleware:   middleware.RequireSession(config.Store),
		AdminMiddleware:     middleware.RequireAdmin(),
	}
	routeConfig.Setup()
}
