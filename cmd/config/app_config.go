package config

import (
	"os"
	"strconv"
	"time"

	"pantry-tracker/internal/api/handlers"
	"pantry-tracker/internal/api/routes"
	"pantry-tracker/internal/middleware"
	"pantry-tracker/internal/utils"
	"pantry-tracker/pkg/ingredient"
	"pantry-tracker/pkg/jwt"
	"pantry-tracker/pkg/recipe"
	"pantry-tracker/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const defaultBcryptCost = 12

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		UnescapePath:      true,
	})
	middlewares := middleware.NewMiddleware()
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
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	bcryptCost := defaultBcryptCost
	if cost, err := strconv.Atoi(utils.GetConfig("BCRYPT_COST")); err == nil {
		bcryptCost = cost
	}

	// Repository
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	userRepository := user.NewUserRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository)
	userService := user.NewUserService(
		userRepository,
		ingredientRepository,
		recipeRepository,
		bcryptCost,
	)

	// Handler
	authHandler := handlers.NewAuthHandler(userService, validator, jwtService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	userHandler := handlers.NewUserHandler(userService, validator, jwtService)

	// routes
	routesConfig := routes.Config{
		App:               app,
		AuthHandler:       authHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		UserHandler:       userHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
