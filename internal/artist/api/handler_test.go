package api_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"bandbook/internal/artist"
	"bandbook/internal/artist/api"
	artist_db "bandbook/internal/artist/db"
	"bandbook/internal/logger"
	"bandbook/internal/models"
	"bandbook/internal/view"
)

func setupServer(t *testing.T) (*chi.Mux, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	for _, m := range []interface{}{(*models.Venue)(nil), (*models.Artist)(nil), (*models.Show)(nil)} {
		_, err = bunDB.NewCreateTable().Model(m).Exec(context.Background())
		require.NoError(t, err)
	}

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	service := artist.NewArtistService(&artist_db.DB{Bun: bunDB})
	handler := api.NewHandler(service, renderer, &logger.Logger{})

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		renderer.RenderNotFound(w)
	})
	return r, bunDB
}

const nightOwlsJSON = `{
	"name": "The Night Owls",
	"city": "Austin",
	"state": "TX",
	"phone": "512-555-0188",
	"genres": ["Blues", "Soul"],
	"facebook_link": "http://fb.example/owls",
	"image_link": "http://img.example/owls.jpg",
	"website": "http://owls.example"
}`

func createNightOwls(t *testing.T, r *chi.Mux) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/artists/create", strings.NewReader(nightOwlsJSON))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Artist The Night Owls was successfully listed!")
}

func artistIDByName(t *testing.T, bunDB *bun.DB, name string) int64 {
	t.Helper()
	var a models.Artist
	err := bunDB.NewSelect().Model(&a).Where("name = ?", name).Limit(1).Scan(context.Background())
	require.NoError(t, err)
	return a.ID
}

func TestCreateThenShowArtist(t *testing.T) {
	r, bunDB := setupServer(t)
	defer bunDB.Close()

	createNightOwls(t, r)
	id := artistIDByName(t, bunDB, "The Night Owls")

	req := httptest.NewRequest(http.MethodGet, "/artists/"+strconv.FormatInt(id, 10), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "The Night Owls")
	assert.Contains(t, body, "Austin, TX")
	assert.Contains(t, body, "Blues")
	assert.Contains(t, body, "Soul")
}

func TestCreateArtistValidationFailure(t *testing.T) {
	r, bunDB := setupServer(t)
	defer bunDB.Close()

	req := httptest.NewRequest(http.MethodPost, "/artists/create", strings.NewReader(`{"city":"Austin"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "An error occurred")

	count, err := bunDB.NewSelect().Model((*models.Artist)(nil)).Count(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestShowArtistNotFound(t *testing.T) {
	r, bunDB := setupServer(t)
	defer bunDB.Close()

	req := httptest.NewRequest(http.MethodGet, "/artists/9999", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}

func TestSearchArtists(t *testing.T) {
	r, bunDB := setupServer(t)
	defer bunDB.Close()

	createNightOwls(t, r)

	form := url.Values{"search_term": {"night"}}
	req := httptest.NewRequest(http.MethodPost, "/artists/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1 result(s)")
	assert.Contains(t, rec.Body.String(), "The Night Owls")
}

func TestEditArtistRedirects(t *testing.T) {
	r, bunDB := setupServer(t)
	defer bunDB.Close()

	createNightOwls(t, r)
	id := artistIDByName(t, bunDB, "The Night Owls")

	payload := `{
		"name": "The Early Birds",
		"city": "Dallas",
		"state": "TX",
		"phone": "214-555-0123",
		"genres": ["Folk"],
		"facebook_link": "",
		"image_link": "",
		"website": ""
	}`
	req := httptest.NewRequest(http.MethodPost, "/artists/"+strconv.FormatInt(id, 10)+"/edit", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/artists/"+strconv.FormatInt(id, 10), rec.Header().Get("Location"))

	var a models.Artist
	err := bunDB.NewSelect().Model(&a).Where("id = ?", id).Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "The Early Birds", a.Name)
	assert.Equal(t, "Dallas", a.City)
	assert.Equal(t, `["Folk"]`, a.Genres)
}

func TestEditArtistNotFound(t *testing.T) {
	r, bunDB := setupServer(t)
	defer bunDB.Close()

	req := httptest.NewRequest(http.MethodGet, "/artists/9999/edit", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404")
}
