package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/farellandr/showbook/internal/aggregate"
	"github.com/farellandr/showbook/internal/flash"
	"github.com/farellandr/showbook/internal/forms"
	"github.com/farellandr/showbook/internal/helpers"
	"github.com/farellandr/showbook/internal/models"
	"github.com/farellandr/showbook/internal/repository"
	"github.com/gin-gonic/gin"
)

const artistsPath = "/artists"

func ListArtists(c *gin.Context) {
	db, ok := database(c)
	if !ok {
		return
	}
	at := now()

	artists, err := repository.NewArtistRepo(db).List(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("list artists: %w", err))
		return
	}

	helpers.Render(c, http.StatusOK, "artists.html", gin.H{
		"Title":   "Artists",
		"Artists": aggregate.SummarizeArtists(artists, at),
	})
}

func SearchArtists(c *gin.Context) {
	db, ok := database(c)
	if !ok {
		return
	}
	at := now()

	artists, err := repository.NewArtistRepo(db).List(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("search artists: %w", err))
		return
	}

	helpers.Render(c, http.StatusOK, "search_artists.html", gin.H{
		"Title":   "Artist search",
		"Results": aggregate.SearchByName(artists, c.PostForm("search_term"), at),
	})
}

func GetArtist(c *gin.Context) {
	id, ok := helpers.ParamID(c, "id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}
	at := now()

	artist, err := repository.NewArtistRepo(db).Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Redirect(c, artistsPath, flash.Warning(fmt.Sprintf("Artist %d was not found.", id)))
		return
	}
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("get artist %d: %w", id, err))
		return
	}

	detail, err := aggregate.BuildArtistDetail(*artist, at)
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}

	helpers.Render(c, http.StatusOK, "show_artist.html", gin.H{
		"Title":  detail.Name,
		"Artist": detail,
	})
}

func NewArtistForm(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "new_artist.html", formChoices(gin.H{
		"Title":  "New artist",
		"Form":   forms.ArtistForm{},
		"Action": artistsPath + "/create",
		"Submit": "Create artist",
	}))
}

func CreateArtist(c *gin.Context) {
	formPath := artistsPath + "/create"

	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		reject(c, formPath, "Artist could not be listed.", err)
		return
	}
	if err := form.Validate(); err != nil {
		reject(c, formPath, "Artist could not be listed.", err)
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	var artist models.Artist
	form.Apply(&artist)
	if err := repository.NewArtistRepo(db).Create(c.Request.Context(), &artist); err != nil {
		persistFailed(c, artistsPath, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name), err)
		return
	}

	helpers.Redirect(c, artistsPath, flash.Success(fmt.Sprintf("Artist %s was successfully listed!", artist.Name)))
}

func EditArtistForm(c *gin.Context) {
	id, ok := helpers.ParamID(c, "id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	artist, err := repository.NewArtistRepo(db).Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Redirect(c, artistsPath, flash.Warning(fmt.Sprintf("Artist %d was not found.", id)))
		return
	}
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("get artist %d: %w", id, err))
		return
	}

	helpers.Render(c, http.StatusOK, "edit_artist.html", formChoices(gin.H{
		"Title":  "Edit " + artist.Name,
		"Form":   forms.ArtistFormFrom(*artist),
		"Action": fmt.Sprintf("%s/%d/edit", artistsPath, id),
		"Submit": "Save artist",
	}))
}

func UpdateArtist(c *gin.Context) {
	id, ok := helpers.ParamID(c, "id")
	if !ok {
		return
	}
	formPath := fmt.Sprintf("%s/%d/edit", artistsPath, id)

	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		reject(c, formPath, "Artist could not be updated.", err)
		return
	}
	if err := form.Validate(); err != nil {
		reject(c, formPath, "Artist could not be updated.", err)
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	artist, err := repository.NewArtistRepo(db).Update(c.Request.Context(), id, form.Apply)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Redirect(c, artistsPath, flash.Warning(fmt.Sprintf("Artist %d was not found.", id)))
		return
	}
	if err != nil {
		persistFailed(c, artistsPath, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name), err)
		return
	}

	helpers.Redirect(c, fmt.Sprintf("%s/%d", artistsPath, artist.ID),
		flash.Success(fmt.Sprintf("Artist %s was successfully updated!", artist.Name)))
}

func DeleteArtist(c *gin.Context) {
	id, ok := helpers.ParamID(c, "id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	deleted, err := repository.NewArtistRepo(db).Delete(c.Request.Context(), id)
	if err != nil {
		persistFailed(c, artistsPath, fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id), err)
		return
	}
	if !deleted {
		helpers.Redirect(c, artistsPath, flash.Info(fmt.Sprintf("Artist %d does not exist.", id)))
		return
	}

	helpers.Redirect(c, artistsPath, flash.Success(fmt.Sprintf("Artist %d was deleted.", id)))
}
