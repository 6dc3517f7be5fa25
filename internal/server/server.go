package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/farellandr/showbook/config"
	"github.com/farellandr/showbook/internal/handlers"
	"github.com/farellandr/showbook/internal/helpers"
	"github.com/farellandr/showbook/internal/logging"
	"github.com/farellandr/showbook/internal/middleware"
	"github.com/farellandr/showbook/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownGrace = 30 * time.Second

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logs, err := logging.Setup(logging.Options{
		File:  cfg.LogFile,
		Level: cfg.LogLevel,
		JSON:  cfg.IsProduction(),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logs.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	r, err := NewRouter(db, cfg.RequestTimeout)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("addr", srv.Addr).Info("server listening")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logrus.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shut down: %w", err)
	}
	return nil
}

// NewRouter builds the engine with every route and middleware. A zero
// timeout leaves request contexts unbounded.
func NewRouter(db *gorm.DB, timeout time.Duration) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logrus.StandardLogger()),
		middleware.Recovery(logrus.StandardLogger(), helpers.RespondPanic),
		middleware.Timeout(timeout),
		middleware.DatabaseMiddleware(db),
	)

	setupRoutes(r)
	return r, nil
}

func setupRoutes(r *gin.Engine) {
	r.StaticFS("/static", web.Static())
	r.GET("/healthz", handlers.Health)
	r.GET("/", handlers.Home)

	venues := r.Group("/venues")
	{
		venues.GET("", handlers.ListVenues)
		venues.POST("/search", handlers.SearchVenues)
		venues.GET("/create", handlers.NewVenueForm)
		venues.POST("/create", handlers.CreateVenue)
		venues.GET("/:id", handlers.GetVenue)
		venues.GET("/:id/edit", handlers.EditVenueForm)
		venues.POST("/:id/edit", handlers.UpdateVenue)
		venues.DELETE("/:id", handlers.DeleteVenue)
		venues.POST("/:id/delete", handlers.DeleteVenue)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", handlers.ListArtists)
		artists.POST("/search", handlers.SearchArtists)
		artists.GET("/create", handlers.NewArtistForm)
		artists.POST("/create", handlers.CreateArtist)
		artists.GET("/:id", handlers.GetArtist)
		artists.GET("/:id/edit", handlers.EditArtistForm)
		artists.POST("/:id/edit", handlers.UpdateArtist)
		artists.DELETE("/:id", handlers.DeleteArtist)
		artists.POST("/:id/delete", handlers.DeleteArtist)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", handlers.ListShows)
		shows.GET("/create", handlers.NewShowForm)
		shows.POST("/create", handlers.CreateShow)
	}

	r.NoRoute(handlers.NotFound)
}
