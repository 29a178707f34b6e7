package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/HackVerse/hackathon-service/config"
	"github.com/HackVerse/hackathon-service/infra/queue"
	"github.com/HackVerse/hackathon-service/internal/api/rest/handlers"
	"github.com/HackVerse/hackathon-service/internal/domain"
	"github.com/HackVerse/hackathon-service/internal/helper"
	"github.com/HackVerse/hackathon-service/internal/repository"
	"github.com/HackVerse/hackathon-service/internal/services"
	"github.com/HackVerse/hackathon-service/pkg/cloudinary"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260901

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.OTPChallenge{},
		&domain.Event{},
		&domain.Team{},
		&domain.TeamMember{},
		&domain.Submission{},
		&domain.Score{},
		&domain.ShortlistEntry{},
		&domain.Entitlement{},
		&domain.Notification{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cloudinary.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	up := cloudinary.NewCloudinaryUploader(cld)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	eventRepo := repository.NewEventRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	shortlistRepo := repository.NewShortlistRepository(db)
	entitlementRepo := repository.NewEntitlementRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// ---------- Services ----------
	authSvc := services.NewAuthService(userRepo, otpRepo, authHelper, up, kafkaProducer)
	eventSvc := services.NewEventService(eventRepo)
	teamSvc := services.NewTeamService(teamRepo, userRepo, eventRepo, notificationRepo)
	submissionSvc := services.NewSubmissionService(submissionRepo, teamRepo, eventRepo, shortlistRepo, up)
	judgingSvc := services.NewJudgingService(scoreRepo, shortlistRepo, teamRepo, eventRepo, entitlementRepo, notificationRepo)
	entitlementSvc := services.NewEntitlementService(entitlementRepo, shortlistRepo, teamRepo)
	notificationSvc := services.NewNotificationService(notificationRepo)

	// ---------- Handlers ----------
	handlers.NewAuthHandler(authSvc, authHelper).SetupRoutes(app)
	handlers.NewEventHandler(eventSvc, authHelper).SetupRoutes(app)
	handlers.NewTeamHandler(teamSvc, authHelper).SetupRoutes(app)
	handlers.NewSubmissionHandler(submissionSvc, authHelper).SetupRoutes(app)
	handlers.NewJudgingHandler(judgingSvc, authHelper).SetupRoutes(app)
	handlers.NewEntitlementHandler(entitlementSvc, authHelper).SetupRoutes(app)
	handlers.NewNotificationHandler(notificationSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
