package router

import (
	"time"

	"github.com/foodgram-dev/foodgram/internal/handlers"
	"github.com/foodgram-dev/foodgram/internal/middleware"
	"github.com/foodgram-dev/foodgram/internal/types"
	"github.com/foodgram-dev/foodgram/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded avatars and recipe images
	r.Static("/media", utils.MediaRoot())

	// Short-link redirects live outside the API prefix
	r.GET("/s/:code", handlers.RedirectShortLink)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth/token")
		{
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", middleware.AuthMiddleware(), handlers.LogoutUser)
		}

		users := api.Group("/users")
		{
			users.POST("", handlers.CreateUser)
			users.GET("", middleware.OptionalAuthMiddleware(), handlers.ListUsers)
			users.GET("/subscriptions", middleware.AuthMiddleware(), handlers.ListSubscriptions)
			users.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			users.PUT("/me/avatar", middleware.AuthMiddleware(), handlers.SetAvatar)
			users.DELETE("/me/avatar", middleware.AuthMiddleware(), handlers.DeleteAvatar)
			users.POST("/set_password", middleware.AuthMiddleware(), handlers.SetPassword)
			users.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetUser)
			users.POST("/:id/subscribe", middleware.AuthMiddleware(), handlers.Subscribe)
			users.DELETE("/:id/subscribe", middleware.AuthMiddleware(), handlers.Subscribe)
		}

		recipes := api.Group("/recipes")
		{
			recipes.GET("", middleware.OptionalAuthMiddleware(), handlers.ListRecipes)
			recipes.POST("", middleware.AuthMiddleware(), handlers.CreateRecipe)
			recipes.GET("/download_shopping_cart", middleware.AuthMiddleware(), handlers.DownloadShoppingCart)
			recipes.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetRecipe)
			recipes.PATCH("/:id", middleware.AuthMiddleware(), handlers.UpdateRecipe)
			recipes.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeleteRecipe)
			recipes.POST("/:id/favorite", middleware.AuthMiddleware(), handlers.ToggleFavorite)
			recipes.DELETE("/:id/favorite", middleware.AuthMiddleware(), handlers.ToggleFavorite)
			recipes.POST("/:id/shopping_cart", middleware.AuthMiddleware(), handlers.ToggleShoppingCart)
			recipes.DELETE("/:id/shopping_cart", middleware.AuthMiddleware(), handlers.ToggleShoppingCart)
			recipes.GET("/:id/get-link", handlers.GetRecipeLink)
		}

		ingredients := api.Group("/ingredients")
		{
			ingredients.GET("", handlers.ListIngredients)
			ingredients.GET("/:id", handlers.GetIngredient)
		}
	}

	return r
}
