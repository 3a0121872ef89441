package models

import (
	"time"

	"github.com/uptrace/bun"
)

type ShowRequest struct {
	ArtistID  int64  `json:"artist_id" validate:"required"`
	VenueID   int64  `json:"venue_id" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
}

type Show struct {
	bun.BaseModel `bun:"table:shows,alias:show"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	StartTime time.Time `bun:"start_time,notnull" json:"start_time"`
	ArtistID  int64     `bun:"artist_id,notnull" json:"artist_id"`
	VenueID   int64     `bun:"venue_id,notnull" json:"venue_id"`

	Artist *Artist `bun:"rel:belongs-to,join:artist_id=id" json:"-"`
	Venue  *Venue  `bun:"rel:belongs-to,join:venue_id=id" json:"-"`
}

// ShowDetail is one show row on a venue or artist detail page.
type ShowDetail struct {
	ShowID          int64     `json:"show_id"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	StartTime       time.Time `json:"start_time"`
}

// PartitionShows splits a record's shows into upcoming and past relative
// to now. Upcoming means strictly later than now; everything else is
// past. The two partitions are disjoint and together cover every show.
func PartitionShows(shows []*Show, now time.Time) (upcoming, past []*Show) {
	upcoming = []*Show{}
	past = []*Show{}
	for _, show := range shows {
		if show.StartTime.After(now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}
	return upcoming, past
}

// ShowListItem is one row of the upcoming-shows listing.
type ShowListItem struct {
	VenueID         int64     `json:"venue_id"`
	ArtistID        int64     `json:"artist_id"`
	VenueName       string    `json:"venue_name"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}
