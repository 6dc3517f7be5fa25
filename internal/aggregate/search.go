package aggregate

import (
	"strings"
	"time"

	"github.com/farellandr/showbook/internal/models"
	"golang.org/x/text/cases"
)

// Listing is a searchable record that owns shows.
type Listing interface {
	ListingID() uint
	ListingName() string
	ListingShows() []models.Show
}

type SearchMatch struct {
	ID               uint
	Name             string
	NumUpcomingShows int
}

type SearchResult struct {
	Term  string
	Count int
	Data  []SearchMatch
}

// SearchByName returns the records whose name contains term, compared
// with Unicode case folding. Surrounding whitespace in term is ignored and
// an empty term matches every record.
func SearchByName[T Listing](corpus []T, term string, now time.Time) SearchResult {
	term = strings.TrimSpace(term)
	fold := cases.Fold()
	needle := fold.String(term)

	result := SearchResult{Term: term, Data: make([]SearchMatch, 0)}
	for _, record := range corpus {
		if needle != "" && !strings.Contains(fold.String(record.ListingName()), needle) {
			continue
		}
		result.Data = append(result.Data, SearchMatch{
			ID:               record.ListingID(),
			Name:             record.ListingName(),
			NumUpcomingShows: CountUpcoming(record.ListingShows(), now),
		})
	}
	result.Count = len(result.Data)
	return result
}

// SummarizeArtists lists artists in input order with their upcoming show
// counts.
func SummarizeArtists(artists []models.Artist, now time.Time) []SearchMatch {
	return SearchByName(artists, "", now).Data
}
