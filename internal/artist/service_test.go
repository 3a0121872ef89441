package artist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bandbook/internal/artist"
	"bandbook/internal/models"
)

type MockDBLayer struct {
	mock.Mock
}

func (m *MockDBLayer) ListArtists(ctx context.Context) ([]models.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artist), args.Error(1)
}

func (m *MockDBLayer) SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Artist), args.Error(1)
}

func (m *MockDBLayer) GetArtistByID(ctx context.Context, id int64) (*models.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artist), args.Error(1)
}

func (m *MockDBLayer) CreateArtist(ctx context.Context, a *models.Artist) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockDBLayer) UpdateArtist(ctx context.Context, a *models.Artist) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func TestSearchEmptyTerm(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := artist.NewArtistService(mockDB)

	results, err := service.Search(context.Background(), "  ")
	assert.NoError(t, err)
	assert.Zero(t, results.Count)
	assert.Empty(t, results.Data)
	mockDB.AssertNotCalled(t, "SearchArtistsByName", mock.Anything, mock.Anything)
}

func TestGetDetailPartitionsShows(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := artist.NewArtistService(mockDB)

	future := time.Now().AddDate(1, 0, 0)
	past := time.Now().AddDate(-1, 0, 0)
	fillmore := &models.Venue{ID: 3, Name: "The Fillmore"}

	mockDB.On("GetArtistByID", mock.Anything, int64(5)).Return(&models.Artist{
		ID:   5,
		Name: "The Night Owls",
		Shows: []*models.Show{
			{ID: 20, ArtistID: 5, VenueID: 3, StartTime: past, Venue: fillmore},
			{ID: 21, ArtistID: 5, VenueID: 3, StartTime: future, Venue: fillmore},
			{ID: 22, ArtistID: 5, VenueID: 3, StartTime: future, Venue: fillmore},
		},
	}, nil)

	detail, err := service.GetDetail(context.Background(), 5)
	assert.NoError(t, err)
	require.Len(t, detail.UpcomingShows, 2)
	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, "The Fillmore", detail.PastShows[0].VenueName)
	assert.Equal(t, int64(20), detail.PastShows[0].ShowID)
}

func TestGetDetailNotFound(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := artist.NewArtistService(mockDB)

	mockDB.On("GetArtistByID", mock.Anything, int64(404)).Return(nil, models.ErrNotFound)

	detail, err := service.GetDetail(context.Background(), 404)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateFetchesThenOverwrites(t *testing.T) {
	mockDB := new(MockDBLayer)
	service := artist.NewArtistService(mockDB)

	mockDB.On("GetArtistByID", mock.Anything, int64(1)).Return(&models.Artist{ID: 1, Name: "Old"}, nil)
	mockDB.On("UpdateArtist", mock.Anything, mock.MatchedBy(func(a *models.Artist) bool {
		return a.ID == 1 && a.Name == "New" && a.City == "Denver"
	})).Return(nil)

	err := service.Update(context.Background(), 1, models.ArtistRequest{
		Name:   "New",
		City:   "Denver",
		State:  "CO",
		Genres: []string{"Folk"},
	})
	assert.NoError(t, err)
	mockDB.AssertExpectations(t)
}
