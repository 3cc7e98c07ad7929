package router

import (
	"net/http"

	"github.com/fara3/fara3-backend/config"
	"github.com/fara3/fara3-backend/internal/app/controller"
	apperrors "github.com/fara3/fara3-backend/internal/errors"
	"github.com/fara3/fara3-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController       *controller.AuthController
	collectionController *controller.CollectionController
	productController    *controller.ProductController
	cartController       *controller.CartController
	orderController      *controller.OrderController
	contactController    *controller.ContactController
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	collectionController *controller.CollectionController,
	productController *controller.ProductController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	contactController *controller.ContactController,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		collectionController: collectionController,
		productController:    productController,
		cartController:       cartController,
		orderController:      orderController,
		contactController:    contactController,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"app":      "Fara3 Backend API",
			"version":  "1.0",
			"status":   "running",
			"database": "connected",
			"endpoints": gin.H{
				"collections": "/api/collections",
				"products":    "/api/products",
				"cart":        "/api/cart",
				"orders":      "/api/orders",
				"auth":        "/api/auth",
				"contact":     "/api/contact",
			},
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
		}

		collections := api.Group("/collections")
		{
			collections.GET("", r.collectionController.GetCollections)
			collections.GET("/:name", r.collectionController.GetCollectionByName)
		}

		products := api.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/featured", r.productController.GetFeaturedProducts)
			products.GET("/:id", r.productController.GetProductByID)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.DELETE("/:item_id", r.cartController.RemoveFromCart)
			cart.DELETE("/clear/:user_id", r.cartController.ClearCart)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", r.orderController.CreateOrder)
			orders.GET("/user/:user_id", r.orderController.GetUserOrders)
		}

		api.POST("/contact", r.contactController.SubmitMessage)
	}

	router.NoRoute(func(c *gin.Context) {
		apperrors.NotFound(c, "Endpoint not found")
	})

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
