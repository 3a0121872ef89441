package show

import (
	"context"
	"time"

	"bandbook/internal/models"
	"bandbook/internal/utils"
)

type DBLayer interface {
	ListUpcomingShows(ctx context.Context, now time.Time) ([]models.Show, error)
	CreateShow(ctx context.Context, show *models.Show) error
}

type ShowService struct {
	DB DBLayer
}

func NewShowService(db DBLayer) *ShowService {
	return &ShowService{DB: db}
}

// ListUpcoming projects future shows into listing rows.
func (s *ShowService) ListUpcoming(ctx context.Context) ([]models.ShowListItem, error) {
	shows, err := s.DB.ListUpcomingShows(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	items := []models.ShowListItem{}
	for _, show := range shows {
		item := models.ShowListItem{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.StartTime,
		}
		if show.Venue != nil {
			item.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			item.ArtistName = show.Artist.Name
			item.ArtistImageLink = show.Artist.ImageLink
		}
		items = append(items, item)
	}
	return items, nil
}

// Create books an artist into a venue. Both ids must resolve; the
// foreign-key constraints reject dangling references at commit time.
func (s *ShowService) Create(ctx context.Context, req models.ShowRequest) (*models.Show, error) {
	startTime, err := utils.ParseStartTime(req.StartTime)
	if err != nil {
		return nil, err
	}

	show := &models.Show{
		ArtistID:  req.ArtistID,
		VenueID:   req.VenueID,
		StartTime: startTime,
	}
	if err := s.DB.CreateShow(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}
