package bootstrap

import (
	"context"
	"log"

	"smart-tools-be/internal/catalog"
	"smart-tools-be/internal/config"
	"smart-tools-be/internal/controller"
	"smart-tools-be/internal/pkg/logger"
	"smart-tools-be/internal/repository/memory"
	"smart-tools-be/internal/repository/redisstore"
	"smart-tools-be/internal/repository/unitofwork"
	"smart-tools-be/internal/service"
	"smart-tools-be/internal/usage"

	pktNats "smart-tools-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Topic drained by the analytics consumer.
const toolRunTopic = "TOOL_RUN_EVENTS"

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	PlanController    controller.PlanController
	ToolController    controller.IToolController
	ProjectController controller.IProjectController
	PaymentController controller.IPaymentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// The static plan and tool tables are configuration; a broken table is a
	// programming error caught here, before the server accepts traffic.
	catalog.MustValidate()

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Usage store: Redis when reachable, in-memory twin otherwise. The
	// meter tolerates a lossy store either way.
	var usageStore usage.Store
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory usage store", err)
		usageStore = memory.NewKVStore()
	} else {
		usageStore = redisstore.NewKVStore(rdb)
	}
	meter := usage.NewMeter(usageStore)

	// 4. Services
	publisherService := service.NewPublisherService(toolRunTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, toolRunTopic, uowFactory)

	authService := service.NewAuthService(uowFactory, cfg.Auth.TokenTTLHours)
	userService := service.NewUserService(uowFactory)
	planService := service.NewPlanService(uowFactory, meter)
	toolService := service.NewToolService(uowFactory, meter, publisherService, natsPub)
	projectService := service.NewProjectService(uowFactory, meter, natsPub)
	paymentService := service.NewPaymentService(uowFactory, natsPub)

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		UserController:    controller.NewUserController(userService),
		PlanController:    controller.NewPlanController(planService),
		ToolController:    controller.NewToolController(toolService),
		ProjectController: controller.NewProjectController(projectService),
		PaymentController: controller.NewPaymentController(paymentService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
