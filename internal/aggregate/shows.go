package aggregate

import (
	"time"

	"github.com/farellandr/showbook/internal/models"
)

type ShowListing struct {
	ShowID          uint
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
	Start           string
	Upcoming        bool
}

// BuildShowListings flattens shows with their Venue and Artist loaded into
// rows for the show list.
func BuildShowListings(shows []models.Show, now time.Time) []ShowListing {
	rows := make([]ShowListing, 0, len(shows))
	for _, show := range shows {
		rows = append(rows, ShowListing{
			ShowID:          show.ID,
			VenueID:         show.VenueID,
			VenueName:       show.Venue.Name,
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime,
			Start:           FormatDateTime(show.StartTime, "medium"),
			Upcoming:        show.IsUpcoming(now),
		})
	}
	return rows
}
