// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/listing"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// Dependencies are the services the API routes are built on
type Dependencies struct {
	Catalog        listing.CatalogReader
	UserService    *user.Service
	CartService    *cart.Service
	ListingService *listing.Service
	Logger         *logrus.Logger
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.UserService, deps.Logger)
	profileHandler := handlers.NewProfileHandler(deps.UserService, deps.Logger)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)

		protected := auth.Group("")
		protected.Use(middleware.RequireLogin(deps.UserService, deps.Logger))
		{
			protected.GET("/profile", profileHandler.GetProfile)
			protected.PUT("/profile", profileHandler.UpdateProfile)
		}
	}
}

// SetupProductRoutes sets up catalog and stateless product routes
func SetupProductRoutes(rg *gin.RouterGroup, deps Dependencies) {
	productHandler := handlers.NewProductHandler(deps.Catalog, deps.ListingService, deps.Logger)

	rg.GET("/catalog", productHandler.GetCatalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/categories", productHandler.GetCategories)
	}
}

// SetupBrowseRoutes sets up the per-session filter and pagination routes
func SetupBrowseRoutes(rg *gin.RouterGroup, deps Dependencies) {
	browseHandler := handlers.NewBrowseHandler(deps.ListingService, deps.Logger)

	browse := rg.Group("/browse")
	browse.Use(middleware.RequireLogin(deps.UserService, deps.Logger))
	{
		browse.GET("", browseHandler.GetBrowse)
		browse.PUT("/filter", browseHandler.UpdateFilter)
		browse.POST("/next", browseHandler.NextPage)
		browse.POST("/previous", browseHandler.PreviousPage)
		browse.PUT("/page/:page", browseHandler.GoToPage)
	}
}

// SetupCartRoutes sets up shopping cart routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.CartService, deps.Logger)

	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.RequireLogin(deps.UserService, deps.Logger))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.POST("/items/:id/decrease", cartHandler.DecreaseCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/checkout", cartHandler.Checkout)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	SetupAuthRoutes(rg, deps)
	SetupProductRoutes(rg, deps)
	SetupBrowseRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
}
