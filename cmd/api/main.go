package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/kevmuria/exam_online/configs"
	"github.com/kevmuria/exam_online/database"
	"github.com/kevmuria/exam_online/handlers"
	"github.com/kevmuria/exam_online/jobs"
	"github.com/kevmuria/exam_online/routes"
	"github.com/kevmuria/exam_online/services"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := database.Connect(config.Config("DATABASE_URL"))
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	logger.Println("✅ Database connected and migrated")

	uploadDir := config.ConfigDefault("UPLOAD_DIR", os.TempDir())
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("🔥 Failed to create upload directory %s: %v", uploadDir, err)
	}

	questions := services.NewQuestionService(db, logger)
	extractor := services.NewExtractor(logger)
	grader := services.NewGradingService(questions, logger)

	questionHandler := handlers.NewQuestionHandler(questions)
	uploadHandler := handlers.NewUploadHandler(extractor, questions, uploadDir, logger)
	quizHandler := handlers.NewQuizHandler(questions, grader)

	c := cron.New()
	c.AddFunc("*/30 * * * *", func() {
		jobs.CleanupUploads(uploadDir, time.Hour, logger)
	})
	go c.Start()
	logger.Println("✅ Cron job for upload cleanup scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Exam Online",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			logger.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": "An internal error occurred",
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept",
		AllowMethods:  "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Exam Online API",
		})
	})

	routes.AdminRoutes(app, questionHandler, uploadHandler)
	routes.QuizRoutes(app, quizHandler)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	port := config.ConfigDefault("PORT", "8080")
	logger.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
