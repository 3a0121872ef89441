package venue

import (
	"context"
	"strings"
	"time"

	"bandbook/internal/models"
)

type DBLayer interface {
	ListVenues(ctx context.Context, now time.Time) ([]models.Venue, error)
	SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error)
	GetVenueByID(ctx context.Context, id int64) (*models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
}

type VenueService struct {
	DB DBLayer
}

func NewVenueService(db DBLayer) *VenueService {
	return &VenueService{DB: db}
}

// ListGroupedByLocation buckets all venues by exact (city, state)
// equality. The scan is ordered by (city, state, name), so groups appear
// in that order and a group's position is fixed by its first venue.
func (s *VenueService) ListGroupedByLocation(ctx context.Context) ([]models.CityGroup, error) {
	venues, err := s.DB.ListVenues(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	groups := []models.CityGroup{}
	index := make(map[[2]string]int)
	for _, v := range venues {
		key := [2]string{v.City, v.State}
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, models.CityGroup{City: v.City, State: v.State, Venues: []models.VenueSummary{}})
		}
		groups[pos].Venues = append(groups[pos].Venues, models.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: v.NumUpcomingShows,
		})
	}
	return groups, nil
}

// Search matches venues whose name contains the trimmed term,
// case-insensitively. An empty or unmatched term yields an empty result,
// never an error.
func (s *VenueService) Search(ctx context.Context, term string) (models.VenueSearchResults, error) {
	results := models.VenueSearchResults{Data: []models.VenueSummary{}}

	term = strings.TrimSpace(term)
	if term == "" {
		return results, nil
	}

	venues, err := s.DB.SearchVenuesByName(ctx, term)
	if err != nil {
		return results, err
	}
	for _, v := range venues {
		results.Data = append(results.Data, models.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: v.NumShows,
		})
	}
	results.Count = len(results.Data)
	return results, nil
}

// GetDetail fetches one venue and partitions its shows against the
// current time. Returns models.ErrNotFound for unknown ids.
func (s *VenueService) GetDetail(ctx context.Context, id int64) (*models.VenueDetail, error) {
	v, err := s.DB.GetVenueByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upcoming, past := models.PartitionShows(v.Shows, time.Now())
	return &models.VenueDetail{
		Venue:         v,
		UpcomingShows: showDetails(upcoming),
		PastShows:     showDetails(past),
	}, nil
}

// GetForEdit fetches the record backing a pre-filled edit form.
func (s *VenueService) GetForEdit(ctx context.Context, id int64) (*models.Venue, error) {
	return s.DB.GetVenueByID(ctx, id)
}

func (s *VenueService) Create(ctx context.Context, req models.VenueRequest) (*models.Venue, error) {
	v := &models.Venue{
		Name:         req.Name,
		City:         req.City,
		State:        req.State,
		Address:      req.Address,
		Phone:        req.Phone,
		FacebookLink: req.FacebookLink,
		ImageLink:    req.ImageLink,
		Website:      req.Website,
		GenreList:    req.Genres,
	}
	if err := s.DB.CreateVenue(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Update overwrites every editable field from the payload.
func (s *VenueService) Update(ctx context.Context, id int64, req models.VenueRequest) error {
	v, err := s.DB.GetVenueByID(ctx, id)
	if err != nil {
		return err
	}

	v.Name = req.Name
	v.City = req.City
	v.State = req.State
	v.Address = req.Address
	v.Phone = req.Phone
	v.FacebookLink = req.FacebookLink
	v.ImageLink = req.ImageLink
	v.Website = req.Website
	v.GenreList = req.Genres

	return s.DB.UpdateVenue(ctx, v)
}

func (s *VenueService) Delete(ctx context.Context, id int64) error {
	return s.DB.DeleteVenue(ctx, id)
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
		if show.Artist != nil {
			d.ArtistName = show.Artist.Name
			d.ArtistImageLink = show.Artist.ImageLink
		}
		details = append(details, d)
	}
	return details
}
