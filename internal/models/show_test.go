package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bandbook/internal/models"
)

func TestPartitionShows(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	shows := []*models.Show{
		{ID: 1, StartTime: now.Add(time.Hour)},
		{ID: 2, StartTime: now.Add(-time.Hour)},
		{ID: 3, StartTime: now}, // exactly now is past, not upcoming
		{ID: 4, StartTime: now.AddDate(1, 0, 0)},
	}

	upcoming, past := models.PartitionShows(shows, now)

	assert.Len(t, upcoming, 2)
	assert.Len(t, past, 2)
	assert.Equal(t, len(shows), len(upcoming)+len(past))

	seen := map[int64]bool{}
	for _, s := range append(upcoming, past...) {
		assert.False(t, seen[s.ID], "show %d in both partitions", s.ID)
		seen[s.ID] = true
	}
}

func TestPartitionShowsEmpty(t *testing.T) {
	upcoming, past := models.PartitionShows(nil, time.Now())
	assert.Empty(t, upcoming)
	assert.Empty(t, past)
}
