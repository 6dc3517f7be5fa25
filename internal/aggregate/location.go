package aggregate

import (
	"time"

	"github.com/farellandr/showbook/internal/models"
)

type VenueSummary struct {
	ID               uint
	Name             string
	NumUpcomingShows int
}

type LocationGroup struct {
	City   string
	State  string
	Venues []VenueSummary
}

type location struct {
	city  string
	state string
}

// GroupVenuesByLocation groups venues by exact (city, state). Groups come
// out in order of first occurrence and venues keep their input order
// inside a group.
func GroupVenuesByLocation(venues []models.Venue, now time.Time) []LocationGroup {
	groups := make([]LocationGroup, 0)
	index := make(map[location]int)

	for _, venue := range venues {
		key := location{city: venue.City, state: venue.State}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, LocationGroup{City: venue.City, State: venue.State})
		}
		groups[i].Venues = append(groups[i].Venues, VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: CountUpcoming(venue.Shows, now),
		})
	}
	return groups
}
