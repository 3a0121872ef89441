package artist

import (
	"context"
	"strings"
	"time"

	"bandbook/internal/models"
)

type DBLayer interface {
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error)
	GetArtistByID(ctx context.Context, id int64) (*models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artist *models.Artist) error
}

type ArtistService struct {
	DB DBLayer
}

func NewArtistService(db DBLayer) *ArtistService {
	return &ArtistService{DB: db}
}

func (s *ArtistService) List(ctx context.Context) ([]models.Artist, error) {
	return s.DB.ListArtists(ctx)
}

// Search matches artists whose name contains the trimmed term,
// case-insensitively. An empty or unmatched term yields an empty result,
// never an error.
func (s *ArtistService) Search(ctx context.Context, term string) (models.ArtistSearchResults, error) {
	results := models.ArtistSearchResults{Data: []models.ArtistSummary{}}

	term = strings.TrimSpace(term)
	if term == "" {
		return results, nil
	}

	artists, err := s.DB.SearchArtistsByName(ctx, term)
	if err != nil {
		return results, err
	}
	for _, a := range artists {
		results.Data = append(results.Data, models.ArtistSummary{
			ID:       a.ID,
			Name:     a.Name,
			NumShows: a.NumShows,
		})
	}
	results.Count = len(results.Data)
	return results, nil
}

// GetDetail fetches one artist and partitions its shows against the
// current time. Returns models.ErrNotFound for unknown ids.
func (s *ArtistService) GetDetail(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	a, err := s.DB.GetArtistByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upcoming, past := models.PartitionShows(a.Shows, time.Now())
	return &models.ArtistDetail{
		Artist:        a,
		UpcomingShows: showDetails(upcoming),
		PastShows:     showDetails(past),
	}, nil
}

// GetForEdit fetches the record backing a pre-filled edit form.
func (s *ArtistService) GetForEdit(ctx context.Context, id int64) (*models.Artist, error) {
	return s.DB.GetArtistByID(ctx, id)
}

func (s *ArtistService) Create(ctx context.Context, req models.ArtistRequest) (*models.Artist, error) {
	a := &models.Artist{
		Name:         req.Name,
		City:         req.City,
		State:        req.State,
		Phone:        req.Phone,
		FacebookLink: req.FacebookLink,
		ImageLink:    req.ImageLink,
		Website:      req.Website,
		GenreList:    req.Genres,
	}
	if err := s.DB.CreateArtist(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update overwrites every editable field from the payload.
func (s *ArtistService) Update(ctx context.Context, id int64, req models.ArtistRequest) error {
	a, err := s.DB.GetArtistByID(ctx, id)
	if err != nil {
		return err
	}

	a.Name = req.Name
	a.City = req.City
	a.State = req.State
	a.Phone = req.Phone
	a.FacebookLink = req.FacebookLink
	a.ImageLink = req.ImageLink
	a.Website = req.Website
	a.GenreList = req.Genres

	return s.DB.UpdateArtist(ctx, a)
}

func showDetails(shows []*models.Show) []models.ShowDetail {
	details := []models.ShowDetail{}
	for _, show := range shows {
		d := models.ShowDetail{
			ShowID:    show.ID,
			ArtistID:  show.ArtistID,
			VenueID:   show.VenueID,
			StartTime: show.StartTime,
		}
		if show.Venue != nil {
			d.VenueName = show.Venue.Name
		}
		details = append(details, d)
	}
	return details
}
