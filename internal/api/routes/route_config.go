package routes

import (
	"recipe-hub-backend/internal/api/handlers"
	"recipe-hub-backend/internal/middleware"
	"recipe-hub-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	CategoryHandler   handlers.CategoryHandler
	ReviewHandler     handlers.ReviewHandler
	ContactHandler    handlers.ContactHandler
	NewsletterHandler handlers.NewsletterHandler
	AboutHandler      handlers.AboutHandler
	UserHandler       handlers.UserHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Public()
	c.User()
	c.Authoring()
	c.GuestRoute()
}

func (c *Config) Public() {
	api := c.App.Group("/api/v1")

	api.Get("/home", c.RecipeHandler.GetHome)

	api.Get("/categories", c.CategoryHandler.GetCategories)
	api.Get("/categories/:id", c.CategoryHandler.GetCategoryDetail)

	api.Get("/recipes", c.RecipeHandler.GetRecipes)
	api.Get("/recipes/search", c.RecipeHandler.SearchRecipes)
	api.Get("/recipes/:id", c.RecipeHandler.GetRecipeDetail)
	api.Post("/recipes/:id/reviews", c.ReviewHandler.SubmitReview)

	api.Get("/about", c.AboutHandler.GetAbout)
	api.Post("/contact", c.ContactHandler.SubmitContact)
	api.Post("/newsletter/subscribe", c.NewsletterHandler.Subscribe)
	api.Post("/newsletter/unsubscribe", c.NewsletterHandler.Unsubscribe)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
	}
}

// Authoring covers the content-management surface the public site has no UI
// for: recipe and category writes, review moderation, contact triage.
func (c *Config) Authoring() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.OnlyAdmin()

	// auth is attached per route; the /recipes and /categories prefixes also
	// serve public reads
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Patch("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", auth, c.RecipeHandler.UploadRecipeImage)

	categories := c.App.Group("/api/v1/categories")
	categories.Post("", auth, admin, c.CategoryHandler.CreateCategory)
	categories.Patch("/:id", auth, admin, c.CategoryHandler.UpdateCategory)

	c.App.Post("/api/v1/reviews/:id/approve", auth, admin, c.ReviewHandler.ApproveReview)
	c.App.Post("/api/v1/contact/:id/read", auth, admin, c.ContactHandler.MarkAsRead)
	c.App.Put("/api/v1/about", auth, admin, c.AboutHandler.UpsertAbout)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
