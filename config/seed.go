package config

import (
	"fmt"
	"time"

	"github.com/farellandr/showbook/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedDemo loads a small sample catalogue when both the venue and artist
// tables are empty. It is a no-op otherwise.
func SeedDemo(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var venues, artists int64
		if err := tx.Model(&models.Venue{}).Count(&venues).Error; err != nil {
			return fmt.Errorf("seed: count venues: %w", err)
		}
		if err := tx.Model(&models.Artist{}).Count(&artists).Error; err != nil {
			return fmt.Errorf("seed: count artists: %w", err)
		}
		if venues > 0 || artists > 0 {
			return nil
		}

		hop := models.Venue{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             models.JoinGenres([]string{"Jazz", "Reggae", "Classical", "Folk"}),
			WebsiteLink:        "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		}
		pianos := models.Venue{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       models.JoinGenres([]string{"Classical", "R&B", "Hip-Hop"}),
			WebsiteLink:  "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
		}
		park := models.Venue{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       models.JoinGenres([]string{"Rock n Roll", "Jazz", "Classical", "Folk"}),
			WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		}
		petals := models.Artist{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             "Rock n Roll",
			WebsiteLink:        "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		}
		quevedo := models.Artist{
			Name:         "Matt Quevedo",
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			Genres:       "Jazz",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		}
		sax := models.Artist{
			Name:   "The Wild Sax Band",
			City:   "San Francisco",
			State:  "CA",
			Phone:  "432-325-5432",
			Genres: models.JoinGenres([]string{"Jazz", "Classical"}),
		}

		for _, v := range []*models.Venue{&hop, &pianos, &park} {
			if err := tx.Omit(clause.Associations).Create(v).Error; err != nil {
				return fmt.Errorf("seed: venue %q: %w", v.Name, err)
			}
		}
		for _, a := range []*models.Artist{&petals, &quevedo, &sax} {
			if err := tx.Omit(clause.Associations).Create(a).Error; err != nil {
				return fmt.Errorf("seed: artist %q: %w", a.Name, err)
			}
		}

		shows := []models.Show{
			{VenueID: hop.ID, ArtistID: petals.ID, StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
			{VenueID: park.ID, ArtistID: quevedo.ID, StartTime: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
			{VenueID: park.ID, ArtistID: sax.ID, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
			{VenueID: park.ID, ArtistID: sax.ID, StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
			{VenueID: park.ID, ArtistID: sax.ID, StartTime: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
		}
		if err := tx.Omit(clause.Associations).Create(&shows).Error; err != nil {
			return fmt.Errorf("seed: shows: %w", err)
		}
		return nil
	})
}
