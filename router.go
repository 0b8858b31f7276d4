package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/digitalstore/digitalstore-api/controllers"
	"github.com/digitalstore/digitalstore-api/middleware"
	"github.com/digitalstore/digitalstore-api/repository"
	"github.com/digitalstore/digitalstore-api/services"
)

// routerDeps carries everything the HTTP layer needs. Auth is injected so
// tests can replace JWT validation.
type routerDeps struct {
	DB             *gorm.DB
	Log            *zap.Logger
	Auth           gin.HandlerFunc
	AdminScope     string
	AllowedOrigins []string
	Images         services.ImageService
	UserInfo       services.UserInfoProvider
	// UploadDir enables /api/v1/uploads when images are stored on local disk
	UploadDir string
}

func setupRouter(d routerDeps) *gin.Engine {
	if len(d.AllowedOrigins) == 0 {
		d.AllowedOrigins = []string{"*"}
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     d.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: !allowsAnyOrigin(d.AllowedOrigins),
			MaxAge:           12 * time.Hour,
		}),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	repo := repository.New(d.DB)
	catalogService := services.NewCatalogService(repo, d.Images, d.Log)
	catalog := controllers.NewCatalogController(catalogService, d.Log)
	admin := controllers.NewAdminController(catalogService, d.Log)
	cart := controllers.NewCartController(services.NewCartService(repo, d.Log), d.Log)
	orders := controllers.NewOrderController(services.NewOrderService(repo, d.Log), d.Log)
	users := controllers.NewUserController(services.NewAccountService(repo, d.UserInfo, d.Log), d.Log)
	favorites := controllers.NewFavoriteController(services.NewFavoriteService(repo, d.Log), d.Log)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/database/status", databaseStatus(d.DB))

		v1.GET("/products", catalog.ListProducts)
		v1.GET("/products/:slug", catalog.GetProduct)
		v1.GET("/categories", catalog.ListCategories)
		v1.GET("/categories/:slug/products", catalog.ListCategoryProducts)
		v1.GET("/regions", catalog.ListRegions)
		v1.GET("/regions/:id/cities", catalog.ListCities)

		if d.UploadDir != "" {
			v1.GET("/uploads/:filename", controllers.NewUploadController(d.UploadDir).GetUploadedImage)
		}
	}

	authed := v1.Group("", d.Auth)
	{
		authed.POST("/users", users.CreateUser)
		authed.GET("/users/me", users.GetMyProfile)
		authed.PUT("/users/me", users.UpdateMyProfile)

		authed.GET("/cart", cart.GetCart)
		authed.POST("/add_or_delete/:slug/:action", cart.AddOrDelete)
		authed.DELETE("/orders/:id/products/:line_id", cart.RemoveLine)
		authed.POST("/cart/checkout", orders.Checkout)

		authed.GET("/orders", orders.ListOrders)
		authed.GET("/orders/:id", orders.GetOrder)

		authed.GET("/favorites", favorites.List)
		authed.POST("/favorites/:slug", favorites.Toggle)
	}

	adm := authed.Group("/admin", middleware.RequireScope(d.AdminScope))
	{
		adm.POST("/categories", admin.CreateCategory)
		adm.POST("/categories/:slug/icon", admin.UploadCategoryIcon)
		adm.GET("/brands", admin.ListBrands)
		adm.POST("/brands", admin.CreateBrand)
		adm.POST("/models", admin.CreateProductModel)
		adm.POST("/products", admin.CreateProduct)
		adm.PATCH("/products/:slug", admin.UpdateProduct)
		adm.POST("/products/:slug/specifications", admin.AddSpecification)
		adm.POST("/products/:slug/image", admin.UploadProductImage)
		adm.POST("/regions", admin.CreateRegion)
		adm.POST("/regions/:id/cities", admin.CreateCity)
		adm.PATCH("/orders/:id", orders.UpdateStatus)
	}

	return router
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// healthCheck godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Digital Store API is running",
	})
}

// databaseStatus godoc
// @Summary Database connectivity and table list
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} controllers.ErrorResponse
// @Router /api/v1/database/status [get]
func databaseStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			dbError(c, "DATABASE_ERROR", "Failed to get database instance")
			return
		}

		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			dbError(c, "DATABASE_CONNECTION_ERROR", "Database connection failed")
			return
		}

		tables, err := db.WithContext(c.Request.Context()).Migrator().GetTables()
		if err != nil {
			dbError(c, "DATABASE_QUERY_ERROR", "Failed to query tables")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Database connected",
			"tables":  tables,
		})
	}
}

func dbError(c *gin.Context, code, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
