package aggregate

import (
	"testing"
	"time"

	"github.com/farellandr/showbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArtistDetail(t *testing.T) {
	venue := models.Venue{ID: 7, Name: "The Musical Hop", ImageLink: "https://example.com/hop.jpg"}
	artist := models.Artist{
		ID:           4,
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Genres:       "Rock n Roll",
		SeekingVenue: true,
		Shows: []models.Show{
			{ID: 1, ArtistID: 4, VenueID: 7, Venue: venue, StartTime: now.Add(-24 * time.Hour)},
			{ID: 2, ArtistID: 4, VenueID: 7, Venue: venue, StartTime: now.Add(24 * time.Hour)},
		},
	}

	detail, err := BuildArtistDetail(artist, now)

	require.NoError(t, err)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Equal(t, "Guns N Petals", detail.Name)
	assert.Equal(t, []string{"Rock n Roll"}, detail.Genres)
	assert.True(t, detail.SeekingVenue)

	require.Len(t, detail.PastShows, 1)
	past := detail.PastShows[0]
	assert.Equal(t, uint(1), past.ShowID)
	assert.Equal(t, uint(7), past.VenueID)
	assert.Equal(t, "The Musical Hop", past.Name)
	assert.Equal(t, "https://example.com/hop.jpg", past.ImageLink)
	assert.Equal(t, "Monday May, 20, 2024 at 9:30PM", past.Start)
	assert.Equal(t, "1 day ago", past.Relative)

	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, uint(2), detail.UpcomingShows[0].ShowID)
	assert.Equal(t, "1 day from now", detail.UpcomingShows[0].Relative)
}

func TestBuildVenueDetailUsesArtistSide(t *testing.T) {
	artist := models.Artist{ID: 5, Name: "Matt Quevado", ImageLink: "https://example.com/matt.jpg"}
	venue := models.Venue{
		ID:      1,
		Name:    "The Dueling Pianos Bar",
		Address: "335 Delancey Street",
		Genres:  "Classical,R&B,Hip-Hop",
		Shows: []models.Show{
			{ID: 9, ArtistID: 5, VenueID: 1, Artist: artist, StartTime: now},
		},
	}

	detail, err := BuildVenueDetail(venue, now)

	require.NoError(t, err)
	assert.Equal(t, 0, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Empty(t, detail.PastShows)
	assert.NotNil(t, detail.PastShows)
	assert.Equal(t, "Matt Quevado", detail.UpcomingShows[0].Name)
	assert.Equal(t, "https://example.com/matt.jpg", detail.UpcomingShows[0].ImageLink)
	assert.Equal(t, []string{"Classical", "R&B", "Hip-Hop"}, detail.Genres)
	assert.Equal(t, "335 Delancey Street", detail.Address)
}

func TestBuildDetailRequiresCounterpart(t *testing.T) {
	venue := models.Venue{
		ID:    1,
		Shows: []models.Show{{ID: 3, ArtistID: 5, VenueID: 1, StartTime: now}},
	}

	_, err := BuildVenueDetail(venue, now)
	assert.ErrorIs(t, err, ErrUnresolvedShow)

	artist := models.Artist{
		ID:    5,
		Shows: []models.Show{{ID: 3, ArtistID: 5, VenueID: 1, Venue: models.Venue{ID: 2}, StartTime: now}},
	}

	_, err = BuildArtistDetail(artist, now)
	assert.ErrorIs(t, err, ErrUnresolvedShow)
}

func TestFormatDateTime(t *testing.T) {
	at := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sunday April, 1, 2035 at 8:00PM", FormatDateTime(at, "full"))
	assert.Equal(t, "Sun 04, 01, 2035 8:00PM", FormatDateTime(at, "medium"))
	assert.Equal(t, "Sun 04, 01, 2035 8:00PM", FormatDateTime(at, ""))
	assert.Equal(t, "2035-04-01 20:00:00", FormatDateTime(at, "2006-01-02 15:04:05"))
}
