package config

import (
	"os"
	"time"

	"recipe-hub-backend/internal/api/handlers"
	"recipe-hub-backend/internal/api/routes"
	"recipe-hub-backend/internal/middleware"
	"recipe-hub-backend/internal/utils"
	"recipe-hub-backend/internal/utils/storage"
	"recipe-hub-backend/pkg/about"
	"recipe-hub-backend/pkg/category"
	"recipe-hub-backend/pkg/contact"
	"recipe-hub-backend/pkg/jwt"
	"recipe-hub-backend/pkg/newsletter"
	"recipe-hub-backend/pkg/recipe"
	"recipe-hub-backend/pkg/review"
	"recipe-hub-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
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

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	categoryRepository := category.NewCategoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	contactRepository := contact.NewContactRepository(db)
	newsletterRepository := newsletter.NewNewsletterRepository(db)
	aboutRepository := about.NewAboutRepository(db)
	userRepository := user.NewUserRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	categoryService := category.NewCategoryService(categoryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, categoryRepository, s3)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository)
	contactService := contact.NewContactService(contactRepository)
	newsletterService := newsletter.NewNewsletterService(newsletterRepository)
	aboutService := about.NewAboutService(
		aboutRepository,
		newsletterRepository,
		recipeRepository,
		reviewRepository,
		categoryRepository,
	)
	userService := user.NewUserService(userRepository, jwtService)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, recipeService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	contactHandler := handlers.NewContactHandler(contactService, validator)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService, validator)
	aboutHandler := handlers.NewAboutHandler(aboutService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		CategoryHandler:   categoryHandler,
		ReviewHandler:     reviewHandler,
		ContactHandler:    contactHandler,
		NewsletterHandler: newsletterHandler,
		AboutHandler:      aboutHandler,
		UserHandler:       userHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
