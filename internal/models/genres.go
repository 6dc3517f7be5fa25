package models

import "strings"

const (
	// GenreDelimiter separates genres in the stored genres column.
	GenreDelimiter = ","
	// GenresMaxLen is the size of the genres column.
	GenresMaxLen = 500
)

// JoinGenres encodes a genre list for storage. Blank entries are dropped.
func JoinGenres(genres []string) string {
	kept := make([]string, 0, len(genres))
	for _, genre := range genres {
		genre = strings.TrimSpace(genre)
		if genre != "" {
			kept = append(kept, genre)
		}
	}
	return strings.Join(kept, GenreDelimiter)
}

// SplitGenres decodes a stored genres column. An empty column yields an
// empty, non-nil list.
func SplitGenres(stored string) []string {
	genres := []string{}
	for _, genre := range strings.Split(stored, GenreDelimiter) {
		genre = strings.TrimSpace(genre)
		if genre != "" {
			genres = append(genres, genre)
		}
	}
	return genres
}

func (venue Venue) GenreList() []string   { return SplitGenres(venue.Genres) }
func (artist Artist) GenreList() []string { return SplitGenres(artist.Genres) }
