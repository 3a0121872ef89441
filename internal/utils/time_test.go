package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bandbook/internal/utils"
)

func TestParseStartTime(t *testing.T) {
	want := time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)

	got, err := utils.ParseStartTime("2030-01-01 20:00:00")
	assert.NoError(t, err)
	assert.True(t, got.Equal(want))

	got, err = utils.ParseStartTime("2030-01-01 20:00")
	assert.NoError(t, err)
	assert.True(t, got.Equal(want))

	got, err = utils.ParseStartTime("2030-01-01T20:00:00Z")
	assert.NoError(t, err)
	assert.True(t, got.Equal(want))

	_, err = utils.ParseStartTime("tomorrow evening")
	assert.Error(t, err)
}

func TestDisplayFormats(t *testing.T) {
	ts := time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "Tue Jan 01, 2030 8:00PM", utils.FormatMedium(ts))
	assert.Equal(t, "Tuesday January 1, 2030 at 8:00PM", utils.FormatFull(ts))
}
