package models

import (
	"github.com/uptrace/bun"
)

type VenueRequest struct {
	Name         string   `json:"name" validate:"required"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Genres       []string `json:"genres" validate:"required"`
	FacebookLink string   `json:"facebook_link"`
	ImageLink    string   `json:"image_link"`
	Website      string   `json:"website"`
}

type Venue struct {
	bun.BaseModel `bun:"table:venues,alias:venue"`

	ID                 int64  `bun:"id,pk,autoincrement" json:"id"`
	Name               string `bun:"name,notnull" json:"name"`
	City               string `bun:"city" json:"city"`
	State              string `bun:"state" json:"state"`
	Address            string `bun:"address" json:"address"`
	Phone              string `bun:"phone" json:"phone"`
	ImageLink          string `bun:"image_link" json:"image_link"`
	FacebookLink       string `bun:"facebook_link" json:"facebook_link"`
	Website            string `bun:"website" json:"website"`
	SeekingTalent      bool   `bun:"seeking_talent,notnull,default:false" json:"seeking_talent"`
	SeekingDescription string `bun:"seeking_description" json:"seeking_description"`
	Genres             string `bun:"genres,notnull,default:'[]'" json:"-"`

	// GenreList is the decoded form of Genres. The db layer fills it on
	// reads and encodes it back on writes; nothing above the db layer
	// touches the raw JSON column.
	GenreList []string `bun:"-" json:"genres"`

	// NumUpcomingShows and NumShows are populated by listing and search
	// queries only.
	NumUpcomingShows int64 `bun:"num_upcoming_shows,scanonly" json:"num_upcoming_shows"`
	NumShows         int64 `bun:"num_shows,scanonly" json:"num_shows"`

	Shows []*Show `bun:"rel:has-many,join:id=venue_id" json:"-"`
}

// VenueSummary is one row of a grouped listing or a search result.
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// CityGroup buckets venues sharing an exact (city, state) pair. Group
// order is first-seen over the (city, state, name) ordered scan.
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueSearchResults wraps a venue search for rendering.
type VenueSearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// VenueDetail is the detail-page view model: the record plus its shows
// partitioned against the current time.
type VenueDetail struct {
	Venue         *Venue       `json:"venue"`
	UpcomingShows []ShowDetail `json:"upcoming_shows"`
	PastShows     []ShowDetail `json:"past_shows"`
}
