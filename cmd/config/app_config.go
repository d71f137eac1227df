package config

import (
	"PantryPal-Backend/internal/api/handlers"
	"PantryPal-Backend/internal/api/routes"
	"PantryPal-Backend/internal/middleware"
	"PantryPal-Backend/internal/utils"
	"PantryPal-Backend/internal/utils/storage"
	"PantryPal-Backend/pkg/assistant"
	"PantryPal-Backend/pkg/billing"
	"PantryPal-Backend/pkg/foodfacts"
	"PantryPal-Backend/pkg/jwt"
	"PantryPal-Backend/pkg/mealplan"
	"PantryPal-Backend/pkg/notification"
	"PantryPal-Backend/pkg/pantry"
	"PantryPal-Backend/pkg/recipe"
	"PantryPal-Backend/pkg/scan"
	"PantryPal-Backend/pkg/shoppinglist"
	"PantryPal-Backend/pkg/user"
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, notification.NotificationService, error) {
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
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	geminiClient, err := assistant.NewGeminiClient(context.Background())
	if err != nil {
		log.Fatalf("error creating Gemini client: %v", err)
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	listRepository := shoppinglist.NewShoppingListRepository(db)
	planRepository := mealplan.NewMealPlanRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	scanRepository := scan.NewScanRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	billingRepository := billing.NewBillingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	pantryService := pantry.NewPantryService(pantryRepository)
	listService := shoppinglist.NewShoppingListService(listRepository)
	planService := mealplan.NewMealPlanService(planRepository)
	recipeService := recipe.NewRecipeService(recipeRepository)
	assistantService := assistant.NewAssistantService(geminiClient, pantryRepository, userRepository)
	foodFactsService := foodfacts.NewFoodFactsService()
	scanService := scan.NewScanService(scanRepository, pantryRepository, assistantService, s3)
	notificationService := notification.NewNotificationService(notificationRepository, pantryRepository, userRepository)
	billingService := billing.NewBillingService(billingRepository, userRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	listHandler := handlers.NewShoppingListHandler(listService, validator)
	planHandler := handlers.NewMealPlanHandler(planService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, assistantService, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)
	foodFactsHandler := handlers.NewFoodFactsHandler(foodFactsService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	billingHandler := handlers.NewBillingHandler(billingService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		PantryHandler:       pantryHandler,
		ShoppingListHandler: listHandler,
		MealPlanHandler:     planHandler,
		RecipeHandler:       recipeHandler,
		AssistantHandler:    assistantHandler,
		FoodFactsHandler:    foodFactsHandler,
		ScanHandler:         scanHandler,
		NotificationHandler: notificationHandler,
		BillingHandler:      billingHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, notificationService, nil
}
