package server

import (
	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/handler"
	"trivia-api/internal/metrics"
	"trivia-api/internal/middleware"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
)

// Dependencies are the long-lived handles the app is built on.
// Cache and Metrics may be nil.
type Dependencies struct {
	DB      *sqlx.DB
	Cache   domain.Cache
	Metrics *metrics.Metrics
}

// NewApp wires repositories, services and handlers into a fiber app.
func NewApp(cfg *config.Config, deps Dependencies) *fiber.App {
	categoryRepo := repository.NewCategoryDatabaseAdapter(deps.DB)
	questionRepo := repository.NewQuestionDatabaseAdapter(deps.DB)

	categoryService := service.NewCategoryService(categoryRepo, deps.Cache, cfg.Cache.CategoryTTL)
	questionService := service.NewQuestionService(questionRepo, categoryService)
	quizService := service.NewQuizService(questionRepo)

	validator := validation.NewValidator()
	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)
	questionHandler := handler.NewQuestionHandler(questionService, validator)
	quizHandler := handler.NewQuizHandler(quizService, validator)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Cache)

	app := fiber.New(fiber.Config{
		AppName:      "trivia-api",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	if deps.Metrics != nil {
		app.Use(middleware.Metrics(deps.Metrics))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/categories", categoryHandler.GetCategories)
	app.Get("/categories/:id/questions",
		middleware.ID("id", domain.CodeNotFound),
		middleware.Page(),
		categoryHandler.GetQuestionsByCategory,
	)

	app.Get("/questions", middleware.Page(), questionHandler.ListQuestions)
	app.Post("/questions", middleware.Page(), questionHandler.CreateOrSearchQuestions)
	app.Delete("/questions/:id", middleware.ID("id", domain.CodeUnprocessable), questionHandler.DeleteQuestion)

	app.Post("/quizzes", quizHandler.NextQuestion)

	app.Get("/health", healthHandler.Health)
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app
}
