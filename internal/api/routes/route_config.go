package routes

import (
	"github.com/gofiber/fiber/v2"

	"foodies-backend/internal/api/handlers"
	"foodies-backend/internal/middleware"
	"foodies-backend/pkg/jwt"
)

type Config struct {
	App            *fiber.App
	AuthHandler    handlers.AuthHandler
	UserHandler    handlers.UserHandler
	RecipeHandler  handlers.RecipeHandler
	CatalogHandler handlers.CatalogHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Recipes()
	c.Catalog()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.AuthHandler.Register)
		auth.Post("/login", c.AuthHandler.Login)
		auth.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Logout)
		auth.Get("/current", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Current)
		auth.Patch("/avatars", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.UpdateAvatar)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/users")
	{
		users.Get("/", c.UserHandler.ListUsers)
		// Static segments have to register before "/:id".
		users.Get("/followers", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ListFollowers)
		users.Get("/following", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ListFollowing)
		users.Get("/current", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Current)
		users.Patch("/avatars", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.UpdateAvatar)
		users.Get("/:id/followers", c.UserHandler.ListFollowersByUserID)
		users.Get("/:id", c.UserHandler.GetUserDetails)
		users.Post("/:id/follow", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.FollowUser)
		users.Delete("/:id/follow", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UnfollowUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("/", c.RecipeHandler.ListRecipes)
		recipes.Get("/own", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.ListOwnRecipes)
		recipes.Get("/popular", c.RecipeHandler.ListPopularRecipes)
		recipes.Get("/favorites", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.ListFavoriteRecipes)
		recipes.Post("/", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Post("/:id/favorite", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.AddFavorite)
		recipes.Delete("/:id/favorite", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.RemoveFavorite)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
		recipes.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Catalog() {
	api := c.App.Group("/api")
	{
		api.Get("/categories", c.CatalogHandler.ListCategories)
		api.Get("/areas", c.CatalogHandler.ListAreas)
		api.Get("/ingredients", c.CatalogHandler.ListIngredients)
		api.Get("/testimonials", c.CatalogHandler.ListTestimonials)
		api.Get("/all", c.CatalogHandler.All)
	}
}
