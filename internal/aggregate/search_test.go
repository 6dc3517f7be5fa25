package aggregate

import (
	"testing"
	"time"

	"github.com/farellandr/showbook/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleArtists() []models.Artist {
	return []models.Artist{
		{ID: 4, Name: "Guns N Petals", Shows: []models.Show{showAt(1, -24*time.Hour), showAt(2, 24*time.Hour)}},
		{ID: 5, Name: "Matt Quevado"},
		{ID: 6, Name: "The Wild Sax Band", Shows: []models.Show{showAt(3, time.Hour), showAt(4, 2*time.Hour)}},
	}
}

func names(result SearchResult) []string {
	out := make([]string, 0, len(result.Data))
	for _, match := range result.Data {
		out = append(out, match.Name)
	}
	return out
}

func TestSearchByName(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "single letter any case", term: "a", want: []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"}},
		{name: "upper case term", term: "A", want: []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"}},
		{name: "band", term: "band", want: []string{"The Wild Sax Band"}},
		{name: "mixed case substring", term: "wILD sAX", want: []string{"The Wild Sax Band"}},
		{name: "no match", term: "zz", want: []string{}},
		{name: "empty term matches all", term: "", want: []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"}},
		{name: "whitespace term matches all", term: "   ", want: []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"}},
		{name: "wildcard characters are literal", term: "%", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SearchByName(sampleArtists(), tt.term, now)

			assert.Equal(t, tt.want, names(result))
			assert.Equal(t, len(tt.want), result.Count)
		})
	}
}

func TestSearchByNameCountsUpcomingShows(t *testing.T) {
	result := SearchByName(sampleArtists(), "", now)

	assert.Equal(t, []SearchMatch{
		{ID: 4, Name: "Guns N Petals", NumUpcomingShows: 1},
		{ID: 5, Name: "Matt Quevado", NumUpcomingShows: 0},
		{ID: 6, Name: "The Wild Sax Band", NumUpcomingShows: 2},
	}, result.Data)
}

func TestSearchByNameVenuesFoldUnicode(t *testing.T) {
	venues := []models.Venue{
		{ID: 1, Name: "Café Müller"},
		{ID: 2, Name: "Park Square Live Music & Coffee"},
	}

	result := SearchByName(venues, "MÜLLER", now)

	assert.Equal(t, 1, result.Count)
	assert.Equal(t, uint(1), result.Data[0].ID)
	assert.Equal(t, "MÜLLER", result.Term)
}

func TestSummarizeArtists(t *testing.T) {
	summaries := SummarizeArtists(sampleArtists(), now)

	assert.Len(t, summaries, 3)
	assert.Equal(t, 1, summaries[0].NumUpcomingShows)
}

func TestBuildShowListings(t *testing.T) {
	shows := []models.Show{
		{
			ID: 1, VenueID: 1, ArtistID: 4, StartTime: now.Add(-time.Hour),
			Venue:  models.Venue{ID: 1, Name: "The Musical Hop"},
			Artist: models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://example.com/gnp.jpg"},
		},
		{
			ID: 2, VenueID: 3, ArtistID: 6, StartTime: now,
			Venue:  models.Venue{ID: 3, Name: "Park Square Live Music & Coffee"},
			Artist: models.Artist{ID: 6, Name: "The Wild Sax Band"},
		},
	}

	rows := BuildShowListings(shows, now)

	assert.Len(t, rows, 2)
	assert.Equal(t, "The Musical Hop", rows[0].VenueName)
	assert.Equal(t, "Guns N Petals", rows[0].ArtistName)
	assert.Equal(t, "https://example.com/gnp.jpg", rows[0].ArtistImageLink)
	assert.False(t, rows[0].Upcoming)
	assert.True(t, rows[1].Upcoming)
	assert.Equal(t, "Tue 05, 21, 2024 9:30PM", rows[1].Start)
}
