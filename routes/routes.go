package routes

import (
	"net/http"

	"provender/auth"
	"provender/ingredients"
	"provender/middleware"
	"provender/ratelim"
	"provender/recipes"
	"provender/shopping"
	"provender/tags"
	"provender/users"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/recipepic/*filepath", http.Dir("static/recipepic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddUserRoutes(router *httprouter.Router) {
	router.GET("/api/users", ratelim.RateLimit(middleware.OptionalAuth(users.ListUsers)))
	router.GET("/api/users/:id", middleware.OptionalAuth(users.GetUser))
	router.GET("/api/profile", middleware.Authenticate(users.GetProfile))

	router.POST("/api/users/:id/subscribe", middleware.Authenticate(users.Subscribe))
	router.DELETE("/api/users/:id/subscribe", middleware.Authenticate(users.Unsubscribe))
	router.GET("/api/subscriptions", middleware.Authenticate(users.ListSubscriptions))
}

func AddIngredientRoutes(router *httprouter.Router) {
	router.GET("/api/ingredients", ratelim.RateLimit(ingredients.ListIngredients))
	router.GET("/api/ingredients/:id", ingredients.GetIngredient)
}

func AddTagRoutes(router *httprouter.Router) {
	router.GET("/api/tags", ratelim.RateLimit(tags.ListTags))
	router.GET("/api/tags/:id", tags.GetTag)
}

func AddRecipeRoutes(router *httprouter.Router) {
	router.GET("/api/recipes", ratelim.RateLimit(middleware.OptionalAuth(recipes.GetRecipes)))
	router.POST("/api/recipes", middleware.Authenticate(recipes.CreateRecipe))
	router.GET("/api/recipes/:id", middleware.OptionalAuth(recipes.GetRecipe))
	router.PUT("/api/recipes/:id", middleware.Authenticate(recipes.UpdateRecipe))
	router.DELETE("/api/recipes/:id", middleware.Authenticate(recipes.DeleteRecipe))
	router.GET("/api/recipes/:id/qrcode", recipes.GetRecipeQR)

	router.POST("/api/recipes/:id/favorite", middleware.Authenticate(recipes.Favorite))
	router.DELETE("/api/recipes/:id/favorite", middleware.Authenticate(recipes.Unfavorite))
	router.POST("/api/recipes/:id/shopping_cart", middleware.Authenticate(recipes.AddToCart))
	router.DELETE("/api/recipes/:id/shopping_cart", middleware.Authenticate(recipes.RemoveFromCart))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart/download", middleware.Authenticate(shopping.DownloadShoppingCart))
}
