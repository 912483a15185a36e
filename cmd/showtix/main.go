package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"showtix/internal/cache"
	"showtix/internal/config"
	"showtix/internal/http-server/handlers/event/bookTicket"
	"showtix/internal/http-server/handlers/event/createEvent"
	"showtix/internal/http-server/handlers/event/getAllEvents"
	"showtix/internal/http-server/handlers/event/getEventInfo"
	"showtix/internal/http-server/handlers/spotify/refreshUserData"
	"showtix/internal/http-server/handlers/spotify/topArtists"
	"showtix/internal/http-server/handlers/spotify/topTracks"
	"showtix/internal/http-server/middleware/mwlogger"
	"showtix/internal/lib/logger/handlers/slogpretty"
	"showtix/internal/lib/logger/sl"
	"showtix/internal/spotify"
	"showtix/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting showtix", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err = rdb.Ping(context.Background()).Err(); err != nil {
		log.Error("failed to connect to redis", sl.Err(err))
		os.Exit(1)
	}

	eventCache := cache.New(rdb, cfg.Redis.TTL)

	spotifyClient := spotify.New(&cfg.Spotify)

	events := cache.NewEventSource(log, eventCache, storage)
	preferences := cache.NewPreferenceSource(log, eventCache, spotifyClient)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/api", func(r chi.Router) {
		r.Get("/events", getAllEvents.New(log, events, preferences))
		r.Get("/events/{eventId}", getEventInfo.New(log, storage))
		r.Post("/events", createEvent.New(log, storage))
		r.Post("/book-ticket", bookTicket.New(log, storage, eventCache))

		r.Route("/spotify", func(r chi.Router) {
			r.Get("/top-artists", topArtists.New(log, preferences))
			r.Get("/top-tracks", topTracks.New(log, spotifyClient))
			r.Get("/refresh-user-data", refreshUserData.New(log, spotifyClient, storage))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	if err = rdb.Close(); err != nil {
		log.Error("failed to close redis connection", sl.Err(err))
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
