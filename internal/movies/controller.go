package movies

import (
	"net/http"
	"strconv"

	"cinepulse/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func parseMovieID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("movieId"), 10, 64)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid movie ID", nil, err.Error())
		return 0, false
	}
	return id, true
}

// AddMovie godoc
// @Summary      Add a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        movie  body      CreateMovieRequest  true  "Movie"
// @Success      200    {object}  response.StandardApiResponse{data=MovieDTO}
// @Failure      400    {object}  response.StandardApiResponse
// @Router       /movies/add [post]
func (c *Controller) AddMovie(ctx *gin.Context) {
	var req CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	movie, err := c.service.AddMovie(ctx.Request.Context(), req.ToDTO())
	if err != nil {
		response.RespondError(ctx, "Failed to add movie", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie added successfully", movie, nil)
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Description  Halls showing the movie are detached, not deleted.
// @Tags         movies
// @Security     BearerAuth
// @Param        movieId  path  int  true  "Movie ID"
// @Success      204
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /movies/{movieId} [delete]
func (c *Controller) DeleteMovie(ctx *gin.Context) {
	id, ok := parseMovieID(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteMovie(ctx.Request.Context(), id); err != nil {
		response.RespondError(ctx, "Failed to delete movie", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdateMovie godoc
// @Summary      Partially update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        movieId  path      int                 true  "Movie ID"
// @Param        movie    body      UpdateMovieRequest  true  "Fields to change"
// @Success      200      {object}  response.StandardApiResponse{data=MovieDTO}
// @Failure      404      {object}  response.StandardApiResponse
// @Router       /movies/{movieId} [patch]
func (c *Controller) UpdateMovie(ctx *gin.Context) {
	id, ok := parseMovieID(ctx)
	if !ok {
		return
	}

	var req UpdateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	movie, err := c.service.UpdateMovie(ctx.Request.Context(), id, req.ToDTO())
	if err != nil {
		response.RespondError(ctx, "Failed to update movie", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie updated successfully", movie, nil)
}

// GetAllMovies godoc
// @Summary      List movies
// @Tags         movies
// @Produce      json
// @Success      200  {object}  response.StandardApiResponse{data=[]MovieDTO}
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /movies [get]
func (c *Controller) GetAllMovies(ctx *gin.Context) {
	movies, err := c.service.GetAllMovies(ctx.Request.Context())
	if err != nil {
		response.RespondError(ctx, "Failed to get movies", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movies retrieved successfully", movies, nil)
}

// GetMovieByName godoc
// @Summary      Movies with an exact name
// @Tags         movies
// @Produce      json
// @Param        movieName  path      string  true  "Movie name"
// @Success      200        {object}  response.StandardApiResponse{data=[]MovieDTO}
// @Failure      404        {object}  response.StandardApiResponse
// @Router       /movies/{movieName} [get]
func (c *Controller) GetMovieByName(ctx *gin.Context) {
	movies, err := c.service.GetMovieByName(ctx.Request.Context(), ctx.Param("movieName"))
	if err != nil {
		response.RespondError(ctx, "Failed to get movies", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movies retrieved successfully", movies, nil)
}

// GetMovieByID godoc
// @Summary      Get a movie by id
// @Tags         movies
// @Produce      json
// @Param        movieId  path      int  true  "Movie ID"
// @Success      200      {object}  response.StandardApiResponse{data=MovieDTO}
// @Failure      404      {object}  response.StandardApiResponse
// @Router       /movies/getMovie/{movieId} [post]
func (c *Controller) GetMovieByID(ctx *gin.Context) {
	id, ok := parseMovieID(ctx)
	if !ok {
		return
	}

	movie, err := c.service.GetMovieByID(ctx.Request.Context(), id)
	if err != nil {
		response.RespondError(ctx, "Failed to get movie", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie retrieved successfully", movie, nil)
}
