package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"foodies-backend/domain"
	"foodies-backend/internal/api/handlers"
	"foodies-backend/internal/api/presenters"
	"foodies-backend/internal/api/routes"
	"foodies-backend/internal/middleware"
	"foodies-backend/internal/utils"
	"foodies-backend/internal/utils/storage"
	"foodies-backend/pkg/catalog"
	"foodies-backend/pkg/jwt"
	"foodies-backend/pkg/recipe"
	"foodies-backend/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		ErrorHandler: presenters.AppErrorHandler,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// uploaded avatars and thumbs are served straight from the public dir
	publicDir := utils.GetConfig("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "./public"
	}
	app.Static("/", publicDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"api": "/api"})
	})

	// utils
	uploads := storage.New(utils.GetConfig("STORAGE_DRIVER"), publicDir)

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, uploads)
	recipeService := recipe.NewRecipeService(recipeRepository, uploads)
	catalogService := catalog.NewCatalogService(catalogRepository, userService, recipeService)

	// Handler
	authHandler := handlers.NewAuthHandler(userService, validator)
	userHandler := handlers.NewUserHandler(userService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// routes
	middlewares := middleware.NewMiddleware(userRepository)
	routesConfig := routes.Config{
		App:            app,
		AuthHandler:    authHandler,
		UserHandler:    userHandler,
		RecipeHandler:  recipeHandler,
		CatalogHandler: catalogHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()

	app.Use(func(c *fiber.Ctx) error {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRouteNotFound)
	})

	return app, nil
}
