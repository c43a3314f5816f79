package cinemahalls

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cinepulse/internal/movies"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "cinemahalls-controller-secret"

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T, repo *fakeRepository, catalog fakeMovies) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	SetupCinemaHallRoutes(r.Group("/api"), NewController(NewService(repo, catalog, nil, nil)))
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "7d4f6c1e-2a7b-4f0e-9a53-4c1de0a10001",
		"email":   "admin@cinepulse.dev",
		"role":    "ADMIN",
		"type":    "access",
		"exp":     time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func serve(t *testing.T, r *gin.Engine, method, target, body, auth string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w.Code, env
}

func TestCinemaHallWriteRoutesRequireToken(t *testing.T) {
	r := setupRouter(t, newFakeRepository(CinemaHall{Name: "Grand"}), fakeMovies{})

	for _, tc := range []struct{ method, target string }{
		{http.MethodPost, "/api/cinemahalls/add"},
		{http.MethodPatch, "/api/cinemahalls/1"},
		{http.MethodDelete, "/api/cinemahalls/1"},
		{http.MethodPut, "/api/cinemahalls/1/movies/1"},
	} {
		code, _ := serve(t, r, tc.method, tc.target, `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, code, "%s %s", tc.method, tc.target)
	}
}

func TestAddAndFetchCinemaHall(t *testing.T) {
	r := setupRouter(t, newFakeRepository(), fakeMovies{1: {ID: 1}})
	admin := adminToken(t)

	code, env := serve(t, r, http.MethodPost, "/api/cinemahalls/add", `{"name":"Zodiac","location":"Downtown","movie_id":1}`, admin)
	require.Equal(t, http.StatusOK, code)

	var created CinemaHallDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Nil(t, created.MovieID)
	assert.Contains(t, string(env.Data), `"movie_id":null`)

	code, env = serve(t, r, http.MethodGet, "/api/cinemahalls/1", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id":1,"name":"Zodiac","location":"Downtown","movie_id":null}`, string(env.Data))

	code, _ = serve(t, r, http.MethodPost, "/api/cinemahalls/add", `{"location":"Downtown"}`, admin)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCinemaHallLookupRoutes(t *testing.T) {
	r := setupRouter(t, newFakeRepository(
		CinemaHall{Name: "Zodiac", Location: "Downtown", MovieID: int64Ptr(2)},
		CinemaHall{Name: "Plaza", Location: "Uptown"},
	), fakeMovies{})

	code, env := serve(t, r, http.MethodGet, "/api/cinemahalls", "", "")
	require.Equal(t, http.StatusOK, code)
	var all []CinemaHallDTO
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 2)

	code, env = serve(t, r, http.MethodGet, "/api/cinemahalls/name/Plaza", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id":2,"name":"Plaza","location":"Uptown","movie_id":null}`, string(env.Data))

	code, env = serve(t, r, http.MethodGet, "/api/cinemahalls/search?name=ZO", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "Zodiac")

	code, env = serve(t, r, http.MethodGet, "/api/cinemahalls/search?name=imax", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "No Cinema Halls found with name containing: imax", env.Message)

	code, _ = serve(t, r, http.MethodGet, "/api/cinemahalls/search", "", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = serve(t, r, http.MethodGet, "/api/cinemahalls/by-movie?movieId=9&location=Downtown", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(env.Data))

	code, _ = serve(t, r, http.MethodGet, "/api/cinemahalls/by-movie?movieId=abc&location=Downtown", "", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = serve(t, r, http.MethodGet, "/api/cinemahalls/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = serve(t, r, http.MethodGet, "/api/cinemahalls/99", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "CinemaHall not found with id 99", env.Message)
}

func TestUpdateDeleteAndAssociateRoutes(t *testing.T) {
	repo := newFakeRepository(CinemaHall{Name: "Grand", Location: "Uptown"})
	r := setupRouter(t, repo, fakeMovies{4: movies.Movie{ID: 4, Name: "Arrival"}})
	admin := adminToken(t)

	code, env := serve(t, r, http.MethodPatch, "/api/cinemahalls/1", `{"name":"","location":"Harbor"}`, admin)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"id":1,"name":"Grand","location":"Harbor","movie_id":null}`, string(env.Data))

	code, env = serve(t, r, http.MethodPut, "/api/cinemahalls/1/movies/4", "", admin)
	require.Equal(t, http.StatusOK, code)
	var hall CinemaHall
	require.NoError(t, json.Unmarshal(env.Data, &hall))
	assert.Equal(t, int64(1), hall.ID)
	require.NotNil(t, hall.Movie)
	assert.Equal(t, "Arrival", hall.Movie.Name)

	code, env = serve(t, r, http.MethodPut, "/api/cinemahalls/1/movies/5", "", admin)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Movie not found", env.Message)

	code, _ = serve(t, r, http.MethodDelete, "/api/cinemahalls/1", "", admin)
	assert.Equal(t, http.StatusNoContent, code)

	code, env = serve(t, r, http.MethodDelete, "/api/cinemahalls/1", "", admin)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "cinemaHall not found", env.Message)
}
