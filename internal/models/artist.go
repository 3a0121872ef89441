package models

import (
	"github.com/uptrace/bun"
)

type ArtistRequest struct {
	Name         string   `json:"name" validate:"required"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required"`
	Phone        string   `json:"phone"`
	Genres       []string `json:"genres" validate:"required"`
	FacebookLink string   `json:"facebook_link"`
	ImageLink    string   `json:"image_link"`
	Website      string   `json:"website"`
}

type Artist struct {
	bun.BaseModel `bun:"table:artists,alias:artist"`

	ID                 int64  `bun:"id,pk,autoincrement" json:"id"`
	Name               string `bun:"name,notnull" json:"name"`
	City               string `bun:"city" json:"city"`
	State              string `bun:"state" json:"state"`
	Phone              string `bun:"phone" json:"phone"`
	ImageLink          string `bun:"image_link" json:"image_link"`
	FacebookLink       string `bun:"facebook_link" json:"facebook_link"`
	Website            string `bun:"website" json:"website"`
	SeekingVenue       bool   `bun:"seeking_venue,notnull,default:false" json:"seeking_venue"`
	SeekingDescription string `bun:"seeking_description" json:"seeking_description"`
	Genres             string `bun:"genres,notnull,default:'[]'" json:"-"`

	// Same convention as Venue: decoded by the db layer, never above it.
	GenreList []string `bun:"-" json:"genres"`

	NumShows int64 `bun:"num_shows,scanonly" json:"num_shows"`

	Shows []*Show `bun:"rel:has-many,join:id=artist_id" json:"-"`
}

// ArtistSummary is one search-result row.
type ArtistSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	NumShows int64  `json:"num_shows"`
}

// ArtistDetail is the detail-page view model.
type ArtistDetail struct {
	Artist        *Artist      `json:"artist"`
	UpcomingShows []ShowDetail `json:"upcoming_shows"`
	PastShows     []ShowDetail `json:"past_shows"`
}

// ArtistSearchResults wraps an artist search for rendering.
type ArtistSearchResults struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}
