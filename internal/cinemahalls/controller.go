package cinemahalls

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

func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid "+label, nil, err.Error())
		return 0, false
	}
	return id, true
}

// GetAllCinemaHalls godoc
// @Summary      List cinema halls
// @Tags         cinemahalls
// @Produce      json
// @Success      200  {object}  response.StandardApiResponse{data=[]CinemaHallDTO}
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /cinemahalls [get]
func (c *Controller) GetAllCinemaHalls(ctx *gin.Context) {
	halls, err := c.service.GetAllCinemaHalls(ctx.Request.Context())
	if err != nil {
		response.RespondError(ctx, "Failed to get cinema halls", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema halls retrieved successfully", halls, nil)
}

// GetCinemaHallByName godoc
// @Summary      First cinema hall with an exact name
// @Tags         cinemahalls
// @Produce      json
// @Param        name  path      string  true  "Hall name"
// @Success      200   {object}  response.StandardApiResponse{data=CinemaHallDTO}
// @Failure      404   {object}  response.StandardApiResponse
// @Router       /cinemahalls/name/{name} [get]
func (c *Controller) GetCinemaHallByName(ctx *gin.Context) {
	hall, err := c.service.GetCinemaHallByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		response.RespondError(ctx, "Failed to get cinema hall", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema hall retrieved successfully", hall, nil)
}

// SearchCinemaHalls godoc
// @Summary      Case-insensitive substring search on hall names
// @Tags         cinemahalls
// @Produce      json
// @Param        name  query     string  true  "Name fragment"
// @Success      200   {object}  response.StandardApiResponse{data=[]CinemaHallDTO}
// @Failure      400   {object}  response.StandardApiResponse
// @Failure      404   {object}  response.StandardApiResponse
// @Router       /cinemahalls/search [get]
func (c *Controller) SearchCinemaHalls(ctx *gin.Context) {
	var query SearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	halls, err := c.service.SearchCinemaHallsByName(ctx.Request.Context(), query.Name)
	if err != nil {
		response.RespondError(ctx, "Failed to search cinema halls", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema halls retrieved successfully", halls, nil)
}

// FindByMovieAndLocation godoc
// @Summary      Halls showing a movie at a location
// @Description  Returns an empty list when nothing matches.
// @Tags         cinemahalls
// @Produce      json
// @Param        movieId   query     int     true  "Movie ID"
// @Param        location  query     string  true  "Location"
// @Success      200       {object}  response.StandardApiResponse{data=[]CinemaHallDTO}
// @Failure      400       {object}  response.StandardApiResponse
// @Router       /cinemahalls/by-movie [get]
func (c *Controller) FindByMovieAndLocation(ctx *gin.Context) {
	var query MovieLocationQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	halls, err := c.service.FindCinemaHallsByMovieAndLocation(ctx.Request.Context(), query.MovieID, query.Location)
	if err != nil {
		response.RespondError(ctx, "Failed to get cinema halls", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema halls retrieved successfully", halls, nil)
}

// FindCinemaHallByID godoc
// @Summary      Get a cinema hall by id
// @Tags         cinemahalls
// @Produce      json
// @Param        id   path      int  true  "Cinema hall ID"
// @Success      200  {object}  response.StandardApiResponse{data=CinemaHallDTO}
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /cinemahalls/{id} [get]
func (c *Controller) FindCinemaHallByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "cinema hall ID")
	if !ok {
		return
	}

	hall, err := c.service.FindCinemaHallByID(ctx.Request.Context(), id)
	if err != nil {
		response.RespondError(ctx, "Failed to get cinema hall", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema hall retrieved successfully", hall, nil)
}

// AddCinemaHall godoc
// @Summary      Add a cinema hall
// @Description  movie_id is ignored; use PUT /cinemahalls/{id}/movies/{movieId}.
// @Tags         cinemahalls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hall  body      CreateCinemaHallRequest  true  "Cinema hall"
// @Success      200   {object}  response.StandardApiResponse{data=CinemaHallDTO}
// @Failure      400   {object}  response.StandardApiResponse
// @Router       /cinemahalls/add [post]
func (c *Controller) AddCinemaHall(ctx *gin.Context) {
	var req CreateCinemaHallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	hall, err := c.service.AddCinemaHall(ctx.Request.Context(), req.ToDTO())
	if err != nil {
		response.RespondError(ctx, "Failed to add cinema hall", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema hall added successfully", hall, nil)
}

// UpdateCinemaHall godoc
// @Summary      Partially update a cinema hall
// @Tags         cinemahalls
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Cinema hall ID"
// @Param        hall  body      UpdateCinemaHallRequest  true  "Fields to change"
// @Success      200   {object}  response.StandardApiResponse{data=CinemaHallDTO}
// @Failure      404   {object}  response.StandardApiResponse
// @Router       /cinemahalls/{id} [patch]
func (c *Controller) UpdateCinemaHall(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "cinema hall ID")
	if !ok {
		return
	}

	var req UpdateCinemaHallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	hall, err := c.service.UpdateCinemaHall(ctx.Request.Context(), id, req.ToDTO())
	if err != nil {
		response.RespondError(ctx, "Failed to update cinema hall", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Cinema hall updated successfully", hall, nil)
}

// DeleteCinemaHall godoc
// @Summary      Delete a cinema hall
// @Tags         cinemahalls
// @Security     BearerAuth
// @Param        id  path  int  true  "Cinema hall ID"
// @Success      204
// @Failure      404  {object}  response.StandardApiResponse
// @Router       /cinemahalls/{id} [delete]
func (c *Controller) DeleteCinemaHall(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "cinema hall ID")
	if !ok {
		return
	}

	if err := c.service.DeleteCinemaHall(ctx.Request.Context(), id); err != nil {
		response.RespondError(ctx, "Failed to delete cinema hall", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AssociateMovie godoc
// @Summary      Show a movie in a cinema hall
// @Description  Responds with the stored hall, including the movie.
// @Tags         cinemahalls
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int  true  "Cinema hall ID"
// @Param        movieId  path      int  true  "Movie ID"
// @Success      200      {object}  response.StandardApiResponse{data=CinemaHall}
// @Failure      404      {object}  response.StandardApiResponse
// @Router       /cinemahalls/{id}/movies/{movieId} [put]
func (c *Controller) AssociateMovie(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "cinema hall ID")
	if !ok {
		return
	}
	movieID, ok := parseIDParam(ctx, "movieId", "movie ID")
	if !ok {
		return
	}

	hall, err := c.service.AssociateMovieWithCinemaHall(ctx.Request.Context(), id, movieID)
	if err != nil {
		response.RespondError(ctx, "Failed to associate movie with cinema hall", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie associated with cinema hall successfully", hall, nil)
}
