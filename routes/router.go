package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pressline/blogapi/config"
	"github.com/pressline/blogapi/controllers"
	"github.com/pressline/blogapi/middleware"
	"github.com/pressline/blogapi/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.RequestLogger())
	r.Use(utils.RecoveryLogger())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	categoryController := controllers.NewCategoryController(db)
	mediaController := controllers.NewMediaController(db, cfg.MediaDir)
	postController := controllers.NewPostController(db)

	api := r.Group("/api")

	api.POST("/login", middleware.RateLimitMiddleware(), authController.Login)
	api.POST("/logout", middleware.AuthRequired(), authController.Logout)
	api.GET("/me", middleware.AuthRequired(), authController.Me)

	api.GET("/category", categoryController.List)
	api.GET("/category/:id", categoryController.Show)
	api.POST("/category", middleware.RateLimitMiddleware(), categoryController.Upsert)
	api.PUT("/category/:id", middleware.RateLimitMiddleware(), categoryController.Upsert)
	api.DELETE("/category/:id", middleware.RateLimitMiddleware(), categoryController.Delete)

	api.GET("/media", mediaController.List)
	api.GET("/media/:id", mediaController.Show)

	api.GET("/post", postController.List)
	api.GET("/post/:id", postController.Show)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	protected.POST("/media", mediaController.Create)
	protected.DELETE("/media/:id", mediaController.Delete)
	protected.POST("/post", postController.Upsert)
	protected.PUT("/post/:id", postController.Upsert)
	protected.DELETE("/post/:id", postController.Delete)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Message(ctx, 404, "route not found")
	})

	return r
}
