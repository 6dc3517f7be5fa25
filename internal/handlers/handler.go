// Package handlers serves the venue, artist and show pages. Each handler
// captures the current time once and uses it for every classification in
// the request.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/farellandr/showbook/internal/flash"
	"github.com/farellandr/showbook/internal/forms"
	"github.com/farellandr/showbook/internal/helpers"
	"github.com/farellandr/showbook/internal/middleware"
	"github.com/farellandr/showbook/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var now = time.Now

func database(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, errors.New("database connection not found"))
		return nil, false
	}
	return db, true
}

// reject sends a failed submission back to its form with one error notice
// listing every problem.
func reject(c *gin.Context, formPath, message string, err error) {
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		helpers.Redirect(c, formPath, flash.Error(message, verr.Problems...))
		return
	}
	helpers.Redirect(c, formPath, flash.Error(message, err.Error()))
}

// persistFailed reports a write that was rolled back.
func persistFailed(c *gin.Context, listPath, message string, err error) {
	logrus.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"path":       c.Request.URL.Path,
	}).WithError(err).Error("write rolled back")
	helpers.Redirect(c, listPath, flash.Error(message))
}

func formChoices(data gin.H) gin.H {
	data["States"] = forms.States
	data["GenreChoices"] = forms.Genres
	return data
}

func Home(c *gin.Context) {
	db, ok := database(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	venues, err := repository.NewVenueRepo(db).Count(ctx)
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}
	artists, err := repository.NewArtistRepo(db).Count(ctx)
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}

	helpers.Render(c, http.StatusOK, "home.html", gin.H{
		"Title":       "Home",
		"VenueCount":  venues,
		"ArtistCount": artists,
	})
}

func Health(c *gin.Context) {
	db, ok := database(c)
	if !ok {
		return
	}
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func NotFound(c *gin.Context) {
	helpers.RespondNotFound(c)
}
