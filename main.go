package main

import (
	"cdax/config"
	courseControllers "cdax/controllers/course"
	healthControllers "cdax/controllers/health"
	paymentControllers "cdax/controllers/payment"
	"cdax/database"
	"cdax/logger"
	"cdax/middleware"
	"cdax/repositories"
	courseRoutes "cdax/routers/courseRoutes"
	healthRoutes "cdax/routers/healthRoutes"
	paymentRoutes "cdax/routers/paymentRoutes"
	"cdax/services"
	"cdax/utils"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.LoadConfig()

	baseLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer baseLog.Sync()

	db, err := database.ConnectDb(cfg, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to connect to the database", "error", err)
	}
	defer db.Close()

	purchaseService := services.NewPurchaseService(
		repositories.NewPurchaseRepo(db.Db, baseLog),
		repositories.NewPendingOrderRepo(db.Db, baseLog),
		services.PurchaseSettings{
			DefaultPrice:    cfg.DefaultCoursePrice,
			Currency:        cfg.Currency,
			PendingOrderTTL: cfg.PendingOrderTTL,
		},
		baseLog,
	)
	contentService := services.NewContentService(services.ContentRepos{
		Courses:     repositories.NewCourseRepo(db.Db, baseLog),
		Modules:     repositories.NewModuleRepo(db.Db, baseLog),
		Videos:      repositories.NewVideoRepo(db.Db, baseLog),
		Assessments: repositories.NewAssessmentRepo(db.Db, baseLog),
		Questions:   repositories.NewQuestionRepo(db.Db, baseLog),
	}, purchaseService, baseLog)

	app := NewApp(cfg, db, contentService, purchaseService, baseLog)

	scheduler, err := utils.InitializeOrderScheduler(cfg.OrderSweepSchedule, purchaseService, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to start order scheduler", "schedule", cfg.OrderSweepSchedule, "error", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		baseLog.Info("Shutting down")
		<-scheduler.Stop().Done()
		if err := app.Shutdown(); err != nil {
			baseLog.Error("Server shutdown failed", "error", err)
		}
	}()

	baseLog.Info("Server is running", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		baseLog.Fatal("Server stopped", "error", err)
	}
}

// NewApp builds the fiber app with middleware and every route group
func NewApp(cfg *config.Config, db *database.DbInstance, content *services.ContentService, purchases *services.PurchaseService, baseLog *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization," + middleware.RequestIDHeader,
	}))
	app.Use(middleware.RequestLogger(baseLog))

	api := app.Group("/api")
	courseRoutes.SetupCourseRoutes(api, courseControllers.NewCourseController(content, baseLog))
	paymentRoutes.SetupPaymentRoutes(api, paymentControllers.NewPaymentController(purchases, baseLog))
	healthRoutes.SetupHealthRoutes(api, healthControllers.NewHealthController(cfg, db))

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return middleware.JsonResponse(c, code, false, err.Error(), nil)
}
