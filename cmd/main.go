package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"projectmatch-service/internal/config"
	"projectmatch-service/internal/geocoding"
	"projectmatch-service/internal/handlers"
	"projectmatch-service/internal/metrics"
	"projectmatch-service/internal/models"
	"projectmatch-service/internal/repository"
	"projectmatch-service/internal/services"
	"projectmatch-service/internal/signaling"
	"projectmatch-service/internal/storage"
)

func main() {
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	minioClient := InitMinIOClient(cfg)
	collector := metrics.NewCollector()

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	projectService := services.NewProjectService(projectRepo, ratingRepo)
	discoveryService := services.NewDiscoveryService(projectRepo, collector)
	matchService := services.NewMatchService(matchRepo, projectRepo, collector)
	ratingService := services.NewRatingService(ratingRepo, projectRepo)
	attachmentService := services.NewAttachmentService(attachmentRepo, projectRepo, minioClient, cfg.MinioBucket)

	geocoder := geocoding.NewClient(cfg.GeocodingBaseURL, BuildGeocodeCache(cfg, collector), collector)
	hub := signaling.NewHub(collector)

	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024,
	})

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	projectHandler := handlers.NewProjectHandler(projectService, discoveryService)
	suggestionHandler := handlers.NewSuggestionHandler(discoveryService)
	matchHandler := handlers.NewMatchHandler(matchService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService)
	geocodeHandler := handlers.NewGeocodeHandler(geocoder)

	api := app.Group("/api")

	// Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	api.Get("/swagger/*", swagger.HandlerDefault)

	api.Use(handlers.RequireUser(userRepo))

	api.Get("/projects", projectHandler.ListProjects)
	api.Get("/projects/suggestions", suggestionHandler.GetSuggestions)
	api.Post("/projects", projectHandler.CreateProject)
	api.Get("/projects/:id", projectHandler.GetProject)
	api.Put("/projects/:id", projectHandler.UpdateProject)
	api.Delete("/projects/:id", projectHandler.DeleteProject)
	api.Post("/projects/:projectId/rate", ratingHandler.RateProject)
	api.Post("/projects/:id/attachment", attachmentHandler.UploadCover)
	api.Get("/projects/:id/attachment", attachmentHandler.DownloadCover)

	api.Post("/matches", matchHandler.RecordSwipe)
	api.Get("/matches", matchHandler.ListMatches)
	api.Put("/matches/:id", matchHandler.Decide)

	api.Get("/geocode/search", geocodeHandler.SearchCities)

	// Signaling socket for project video calls
	app.Use("/ws/signaling", signaling.UpgradeRequired)
	app.Get("/ws/signaling", signaling.Handler(hub))

	log.Printf("Server listening on port %s", cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Match{},
		&models.Rating{},
		&models.Attachment{},
	)
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
}

func InitMinIOClient(cfg *config.Config) *minio.Client {
	minioClient, err := storage.NewMinioClient(cfg)
	if err != nil {
		log.Fatalf("MinIO client initialization failed: %v", err)
	}
	return minioClient
}

// BuildGeocodeCache assembles the memory layer, plus the redis layer when
// REDIS_HOST is configured. Without redis the in-process cache still works.
func BuildGeocodeCache(cfg *config.Config, collector *metrics.Collector) *geocoding.LayeredCache {
	layers := []geocoding.CityCache{geocoding.NewMemoryCache(cfg.GeocodeCacheTTL)}

	if cfg.RedisHost != "" {
		redisClient, err := storage.NewRedisClient(cfg.RedisHost, cfg.RedisPort)
		if err != nil {
			log.Printf("Redis unavailable, geocode cache runs in-process only: %v", err)
		} else {
			layers = append(layers, geocoding.NewRedisCache(redisClient, cfg.GeocodeCacheTTL))
		}
	}
	return geocoding.NewLayeredCache(collector, layers...)
}
