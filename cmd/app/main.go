package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"campuseats/cmd"
	"campuseats/internal/adapters/out/postgres/botrepo"
	"campuseats/internal/adapters/out/postgres/orderrepo"
	"campuseats/internal/adapters/out/postgres/profilerepo"
	"campuseats/internal/adapters/out/postgres/restaurantrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DBConnectionString()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrateDatabase(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager(slog.Default())
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	startWebServer(&app, jobManager.StopAll, configs.HTTPPort)
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&profilerepo.ProfileDTO{},
		&botrepo.BotDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, stopJobs func(), port string) {
	e := echo.New()
	e.HideBanner = true

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e, app.CreateAuthMiddleware())

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	stopJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env is fine in containerized deployments where everything
	// arrives through the environment.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "campuseats"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		JWTSecret: mustEnv("JWT_SECRET"),

		AllowedEmailDomains: envList("ALLOWED_EMAIL_DOMAINS"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		OrderLoadJobEnabled:        envBool("ORDER_LOAD_JOB_ENABLED"),
		OrderLoadJobSchedule:       os.Getenv("ORDER_LOAD_JOB_SCHEDULE"),
		OrderLoadJobOrdersPerTick:  envInt("ORDER_LOAD_JOB_ORDERS_PER_TICK", 2),
		OrderLoadJobCustomerEmails: envList("ORDER_LOAD_JOB_CUSTOMER_EMAILS"),
		FulfillmentJobEnabled:      envBool("FULFILLMENT_JOB_ENABLED"),
		FulfillmentJobSchedule:     os.Getenv("FULFILLMENT_JOB_SCHEDULE"),
		FulfillmentJobBatchSize:    envInt("FULFILLMENT_JOB_BATCH_SIZE", 5),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, raw)
	}
	return value
}

func envBool(key string) bool {
	value, _ := strconv.ParseBool(os.Getenv(key))
	return value
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
