package routes

import (
	"github.com/gin-gonic/gin"

	commonmw "github.com/wiliafri0-dotcom/sayursegar02/common/middleware"
	"github.com/wiliafri0-dotcom/sayursegar02/controllers"
	"github.com/wiliafri0-dotcom/sayursegar02/middleware"
)

// Controllers groups the handlers the storefront routes dispatch to.
type Controllers struct {
	Session  *controllers.SessionController
	Catalog  *controllers.CatalogController
	Cart     *controllers.CartController
	Checkout *controllers.CheckoutController
	Products *controllers.AdminProductController
}

// Options configures route-level middleware.
type Options struct {
	// Session resolves the request's session; every storefront route uses it.
	Session gin.HandlerFunc
	// AdminLoginPerMinute limits admin identity submissions per client IP.
	AdminLoginPerMinute int
}

// RegisterRoutes sets up the storefront routes.
func RegisterRoutes(r *gin.Engine, c Controllers, opts Options) {
	r.GET("/catalog/categories", c.Catalog.Categories)

	app := r.Group("")
	app.Use(opts.Session)

	sessionRoutes := app.Group("/session")
	sessionRoutes.GET("", c.Session.GetSession)
	sessionRoutes.POST("/buyer", c.Session.IdentifyBuyer)
	sessionRoutes.POST("/admin", commonmw.RateLimitMiddleware(opts.AdminLoginPerMinute, opts.AdminLoginPerMinute), c.Session.IdentifyAdmin)

	// Identified sessions only
	identified := app.Group("")
	identified.Use(middleware.RequireIdentified())
	identified.GET("/catalog", c.Catalog.Browse)
	identified.GET("/cart", c.Cart.GetCart)
	identified.POST("/cart/items", c.Cart.AddItem)
	identified.PATCH("/cart/items/:product_id", c.Cart.UpdateQuantity)
	identified.DELETE("/cart/items/:product_id", c.Cart.RemoveItem)

	// Buyer-only routes
	app.POST("/checkout", middleware.BuyerOnly(), c.Checkout.Checkout)

	// Admin-only routes
	adminRoutes := app.Group("/admin/products")
	adminRoutes.Use(middleware.AdminOnly())
	adminRoutes.GET("", c.Products.ListProducts)
	adminRoutes.POST("", c.Products.CreateProduct)
	adminRoutes.PUT("/:id", c.Products.UpdateProduct)
	adminRoutes.DELETE("/:id", c.Products.DeleteProduct)
}
