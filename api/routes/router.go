package routes

import (
	"net/http"
	"time"

	_ "cinepulse/docs"
	"cinepulse/internal/auth"
	"cinepulse/internal/catalogevents"
	"cinepulse/internal/cinemahalls"
	"cinepulse/internal/movies"
	"cinepulse/internal/shared/config"
	"cinepulse/internal/shared/database"
	"cinepulse/internal/users"
	"cinepulse/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher catalogevents.Publisher

	movieRepo movies.Repository
}

// NewRouter creates a new router instance. cacheService may be nil.
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, publisher catalogevents.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cacheService,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// movies first: the hall service looks movies up through the same repository
		r.setupMovieRoutes(api)
		r.setupCinemaHallRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinepulse-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinepulse-backend",
			"cache":     r.cache != nil,
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(userRepo, r.config)
	authController := auth.NewController(authService)

	auth.NewRouter(authController, r.config).SetupRoutes(rg)
}

// setupMovieRoutes configures the movie catalog routes
func (r *Router) setupMovieRoutes(rg *gin.RouterGroup) {
	r.movieRepo = movies.NewRepository(r.db.GetPostgreSQL())
	movieService := movies.NewService(r.movieRepo, r.cache, r.publisher)

	movies.SetupMovieRoutes(rg, movies.NewController(movieService))
}

// setupCinemaHallRoutes configures the cinema hall routes
func (r *Router) setupCinemaHallRoutes(rg *gin.RouterGroup) {
	hallRepo := cinemahalls.NewRepository(r.db.GetPostgreSQL())
	hallService := cinemahalls.NewService(hallRepo, r.movieRepo, r.cache, r.publisher)

	cinemahalls.SetupCinemaHallRoutes(rg, cinemahalls.NewController(hallService))
}
