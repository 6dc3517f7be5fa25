// Package aggregate derives read-only views over venues, artists and their
// shows: past/upcoming partitions, location groups, detail views and name
// search. Nothing here performs I/O or mutates its input; every function
// takes the evaluation instant explicitly so a caller can hold one instant
// for a whole request.
package aggregate

import (
	"time"

	"github.com/farellandr/showbook/internal/models"
)

// ClassifyShows partitions shows into those that started before now and
// those starting at or after now. Input order is kept on both sides and
// len(past)+len(upcoming) == len(shows).
func ClassifyShows(shows []models.Show, now time.Time) (past, upcoming []models.Show) {
	past = make([]models.Show, 0, len(shows))
	upcoming = make([]models.Show, 0, len(shows))
	for _, show := range shows {
		if show.IsUpcoming(now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}
	return past, upcoming
}

// CountUpcoming returns how many shows start at or after now.
func CountUpcoming(shows []models.Show, now time.Time) int {
	_, upcoming := ClassifyShows(shows, now)
	return len(upcoming)
}
