package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"feedback/cmd"
	httpin "feedback/internal/adapters/in/http"
	"feedback/internal/adapters/out/notify"
	"feedback/internal/adapters/out/postgres/listingrepo"
	"feedback/internal/adapters/out/postgres/merchantrepo"
	"feedback/internal/adapters/out/postgres/orderrepo"
	"feedback/internal/adapters/out/postgres/taskrepo"
	"feedback/internal/adapters/out/postgres/userrepo"
	rediscache "feedback/internal/adapters/out/redis"
	"feedback/internal/core/application/usecases/queries"
	"feedback/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	notifier := notify.NewInMemoryFeed()
	taskCache := openTaskCache(configs, logger)

	root := cmd.NewCompositionRoot(configs, gormDB, notifier, taskCache)

	jobManager := jobs.NewJobManager(root.CreateExpireListingsCommandHandler(logger), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, notifier, taskCache, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       0,
		TaskBoardTTL:  os.Getenv("TASK_BOARD_TTL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

// openTaskCache connects the Redis task board cache.
// Returns nil when REDIS_ADDR is unset or unreachable; the task board then
// reads straight from the database.
func openTaskCache(configs cmd.Config, logger *slog.Logger) queries.AvailableTasksCache {
	if configs.RedisAddr == "" {
		return nil
	}

	ttl := 30 * time.Second
	if configs.TaskBoardTTL != "" {
		parsed, err := time.ParseDuration(configs.TaskBoardTTL)
		if err != nil {
			log.Fatalf("Invalid TASK_BOARD_TTL: %v", err)
		}
		ttl = parsed
	}

	cache, err := rediscache.NewTaskBoardCache(
		configs.RedisAddr, configs.RedisPassword, configs.RedisDB, ttl,
	)
	if err != nil {
		logger.Warn("Redis unavailable, task board served without cache", "error", err)
		return nil
	}

	return cache
}

func startWebServer(
	root *cmd.CompositionRoot,
	notifier *notify.InMemoryFeed,
	taskCache queries.AvailableTasksCache,
	port string,
) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		root.CreateApproveMerchantCommandHandler(),
		root.CreateRejectMerchantCommandHandler(),
		root.CreateCreateListingCommandHandler(),
		root.CreateMarkListingNonCompliantCommandHandler(),
		root.CreateRemoveListingCommandHandler(),
		root.CreateSetUserRoleCommandHandler(),
		root.CreateSetUserActiveCommandHandler(),
		root.CreateAcceptTaskCommandHandler(),
		root.CreateStartPickupCommandHandler(),
		root.CreateConfirmPickupCommandHandler(),
		root.CreateCompleteDeliveryCommandHandler(),
		root.CreatePlaceOrderCommandHandler(),
		root.CreateSubmitRatingCommandHandler(),
		root.CreateClaimListingCommandHandler(),
		root.CreateGetMerchantsByStatusQueryHandler(),
		root.CreateGetListingsQueryHandler(),
		root.CreateGetAvailableTasksQueryHandler(),
		root.CreateGetUsersQueryHandler(),
		root.CreateGetUserQueryHandler(),
		notifier,
		taskCache,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&merchantrepo.MerchantDTO{},
		&listingrepo.ListingDTO{},
		&taskrepo.TaskDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&userrepo.UserDTO{},
	)
}
