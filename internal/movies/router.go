package movies

import (
	"cinepulse/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupMovieRoutes(rg *gin.RouterGroup, controller *Controller) {
	movies := rg.Group("/movies")
	{
		movies.GET("", controller.GetAllMovies)                    // GET /api/movies
		movies.GET("/:movieName", controller.GetMovieByName)       // GET /api/movies/:movieName
		movies.POST("/getMovie/:movieId", controller.GetMovieByID) // POST /api/movies/getMovie/:movieId
	}

	admin := movies.Group("")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("/add", controller.AddMovie)           // POST /api/movies/add
		admin.PATCH("/:movieId", controller.UpdateMovie)  // PATCH /api/movies/:movieId
		admin.DELETE("/:movieId", controller.DeleteMovie) // DELETE /api/movies/:movieId
	}
}
