package api_test

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"bandbook/internal/logger"
	"bandbook/internal/models"
	"bandbook/internal/show"
	"bandbook/internal/show/api"
	show_db "bandbook/internal/show/db"
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

	service := show.NewShowService(&show_db.DB{Bun: bunDB})
	handler := api.NewHandler(service, renderer, &logger.Logger{})

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, bunDB
}

func seedArtistAndVenue(t *testing.T, bunDB *bun.DB) (artistID, venueID int64) {
	t.Helper()
	artist := models.Artist{Name: "The Night Owls", Genres: "[]"}
	_, err := bunDB.NewInsert().Model(&artist).Exec(context.Background())
	require.NoError(t, err)
	venue := models.Venue{Name: "The Fillmore", Genres: "[]"}
	_, err = bunDB.NewInsert().Model(&venue).Exec(context.Background())
	require.NoError(t, err)
	return artist.ID, venue.ID
}

func TestCreateShowThenList(t *testing.T) {
	r, bunDB := setupServer(t)
	defer bunDB.Close()

	artistID, venueID := seedArtistAndVenue(t, bunDB)

	payload := fmt.Sprintf(`{"artist_id": %d, "venue_id": %d, "start_time": "2030-01-01 20:00:00"}`, artistID, venueID)
	req := httptest.NewRequest(http.MethodPost, "/shows/create", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show was successfully listed!")

	req = httptest.NewRequest(http.MethodGet, "/shows/", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "The Night Owls")
	assert.Contains(t, body, "The Fillmore")
	assert.Contains(t, body, "Tuesday January 1, 2030 at 8:00PM")
}

func TestCreateShowBadStartTime(t *testing.T) {
	r, bunDB := setupServer(t)
	defer bunDB.Close()

	artistID, venueID := seedArtistAndVenue(t, bunDB)

	payload := fmt.Sprintf(`{"artist_id": %d, "venue_id": %d, "start_time": "next friday"}`, artistID, venueID)
	req := httptest.NewRequest(http.MethodPost, "/shows/create", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show could not be listed")

	count, err := bunDB.NewSelect().Model((*models.Show)(nil)).Count(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateShowMissingFields(t *testing.T) {
	r, bunDB := setupServer(t)
	defer bunDB.Close()

	req := httptest.NewRequest(http.MethodPost, "/shows/create", strings.NewReader(`{"start_time": "2030-01-01 20:00:00"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Show could not be listed")
}
