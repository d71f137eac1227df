package routes

import (
	"PantryPal-Backend/internal/api/handlers"
	"PantryPal-Backend/internal/middleware"
	"PantryPal-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	PantryHandler       handlers.PantryHandler
	ShoppingListHandler handlers.ShoppingListHandler
	MealPlanHandler     handlers.MealPlanHandler
	RecipeHandler       handlers.RecipeHandler
	AssistantHandler    handlers.AssistantHandler
	FoodFactsHandler    handlers.FoodFactsHandler
	ScanHandler         handlers.ScanHandler
	NotificationHandler handlers.NotificationHandler
	BillingHandler      handlers.BillingHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.AuthRoute()
}

func (c *Config) GuestRoute() {
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	c.App.Post("/auth/register", c.UserHandler.Register)
	c.App.Post("/auth/login", c.UserHandler.Login)
	c.App.Post("/webhook/midtrans", c.BillingHandler.MidtransWebhook)
}

// AuthRoute registers everything behind the access gate: bearer auth first,
// then the subject check for any route that names a userId.
func (c *Config) AuthRoute() {
	auth := c.App.Group("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AuthorizeSubject())

	// user profile
	auth.Post("/user/profile", c.UserHandler.UpsertProfile)
	auth.Get("/user/profile/:userId", c.UserHandler.GetProfile)
	auth.Post("/user/subscribe", c.BillingHandler.Subscribe)

	// pantry
	auth.Post("/pantry/add", c.PantryHandler.AddItems)
	auth.Get("/pantry/:userId", c.PantryHandler.GetPantry)
	auth.Put("/pantry/item/:userId/:itemId", c.PantryHandler.UpdateItem)
	auth.Delete("/pantry/item/:userId/:itemId", c.PantryHandler.DeleteItem)

	// shopping lists
	auth.Post("/shopping-list/create", c.ShoppingListHandler.CreateList)
	auth.Get("/shopping-lists/:userId", c.ShoppingListHandler.GetLists)
	auth.Get("/shopping-list/:listId", c.ShoppingListHandler.GetListDetail)
	auth.Post("/shopping-list/:listId/add", c.ShoppingListHandler.AddItems)
	auth.Put("/shopping-list/:listId/item/:itemId", c.ShoppingListHandler.UpdateItem)
	auth.Post("/shopping-list/:listId/to-pantry", c.ShoppingListHandler.TransferToPantry)

	// meal plans
	auth.Post("/meal-plan/create", c.MealPlanHandler.CreatePlan)
	auth.Get("/meal-plans/:userId", c.MealPlanHandler.GetPlans)
	auth.Get("/meal-plan/:planId", c.MealPlanHandler.GetPlanDetail)

	// recipes
	auth.Post("/recipe/save", c.RecipeHandler.SaveRecipe)
	auth.Get("/recipes/:userId", c.RecipeHandler.GetRecipes)
	auth.Get("/recipe/:recipeId", c.RecipeHandler.GetRecipeDetail)
	auth.Post("/recipes/search", c.RecipeHandler.SearchRecipes)

	// assistant + food database
	auth.Post("/ai-chef/query", c.AssistantHandler.AIChefQuery)
	auth.Post("/micronutrition/analyze", c.AssistantHandler.AnalyzeMicronutrition)
	auth.Post("/barcode/process", c.AssistantHandler.ProcessBarcode)
	auth.Get("/food/search", c.FoodFactsHandler.Search)
	auth.Get("/food/nutrition/:foodId", c.FoodFactsHandler.GetNutrition)

	// scanning
	auth.Post("/receipt/scan", c.ScanHandler.UploadReceipt)
	auth.Get("/receipt/scan/:scanId", c.ScanHandler.GetScan)
	auth.Post("/receipt/save-items", c.ScanHandler.SaveScannedItems)
	auth.Post("/food/recognize", c.ScanHandler.RecognizeFood)

	// notifications
	auth.Get("/notifications/:userId", c.NotificationHandler.GetNotifications)
	auth.Post("/notifications/:notificationId/read", c.NotificationHandler.MarkRead)
}
