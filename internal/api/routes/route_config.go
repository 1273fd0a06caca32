package routes

import (
	"pantry-tracker/internal/api/handlers"
	"pantry-tracker/internal/middleware"
	"pantry-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	AuthHandler       handlers.AuthHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	UserHandler       handlers.UserHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.Identify(c.JWTService))
	c.Auth()
	c.Ingredients()
	c.Recipes()
	c.Users()
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/token", c.AuthHandler.Login)
		auth.Post("/register", c.AuthHandler.Register)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/ingredients")
	{
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		ingredients.Get("/:name", c.IngredientHandler.GetIngredient)
		ingredients.Post("", c.Middleware.EnsureLoggedIn(), c.IngredientHandler.CreateIngredient)
		ingredients.Patch("/:name", c.Middleware.EnsureAdmin(), c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:name", c.Middleware.EnsureAdmin(), c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
		recipes.Post("", c.Middleware.EnsureAdmin(), c.RecipeHandler.CreateRecipe)
		recipes.Patch("/:id", c.Middleware.EnsureAdmin(), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.Middleware.EnsureAdmin(), c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/ingredients/:name", c.Middleware.EnsureAdmin(), c.RecipeHandler.AddIngredient)
		recipes.Delete("/:id/ingredients/:name", c.Middleware.EnsureAdmin(), c.RecipeHandler.RemoveIngredient)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/users")
	{
		users.Post("", c.Middleware.EnsureAdmin(), c.UserHandler.CreateUser)
		users.Get("", c.Middleware.EnsureAdmin(), c.UserHandler.GetUsers)

		correctUser := c.Middleware.EnsureAdminOrCorrectUser("username")
		users.Get("/:username", correctUser, c.UserHandler.GetUser)
		users.Patch("/:username", correctUser, c.UserHandler.UpdateUser)
		users.Delete("/:username", correctUser, c.UserHandler.DeleteUser)

		users.Post("/:username/ingredients/:name", correctUser, c.UserHandler.AddIngredient)
		users.Delete("/:username/ingredients/:name", correctUser, c.UserHandler.RemoveIngredient)
		users.Post("/:username/recipes/:id", correctUser, c.UserHandler.AddRecipe)
		users.Delete("/:username/recipes/:id", correctUser, c.UserHandler.RemoveRecipe)
	}
}
