package cinemahalls

import (
	"cinepulse/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCinemaHallRoutes(rg *gin.RouterGroup, controller *Controller) {
	halls := rg.Group("/cinemahalls")
	{
		halls.GET("", controller.GetAllCinemaHalls) // GET /api/cinemahalls
		halls.GET("/name/:name", controller.GetCinemaHallByName)
		halls.GET("/search", controller.SearchCinemaHalls)        // ?name=
		halls.GET("/by-movie", controller.FindByMovieAndLocation) // ?movieId=&location=
		halls.GET("/:id", controller.FindCinemaHallByID)
	}

	admin := halls.Group("")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("/add", controller.AddCinemaHall)
		admin.PATCH("/:id", controller.UpdateCinemaHall)
		admin.DELETE("/:id", controller.DeleteCinemaHall)
		admin.PUT("/:id/movies/:movieId", controller.AssociateMovie)
	}
}
