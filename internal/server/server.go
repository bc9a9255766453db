package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitrinalocal/services/api/internal/application"
	"github.com/vitrinalocal/services/api/internal/config"
	"github.com/vitrinalocal/services/api/internal/infrastructure/media"
	mongodoc "github.com/vitrinalocal/services/api/internal/infrastructure/mongo"
	publichttp "github.com/vitrinalocal/services/api/internal/interfaces/http/public"
)

// Server manages the HTTP lifecycle and acts as the composition root
// wiring repositories, services and handlers together.
type Server struct {
	logger         zerolog.Logger
	client         *mongo.Client
	database       *mongo.Database
	storeQueries   application.StoreQueryService
	storeCommands  application.StoreCommandService
	reviewQueries  application.ReviewQueryService
	reviewCommands application.ReviewCommandService
	addr           string
	allowedOrigins []string
}

// New assembles the application services and handlers from Config and
// an established Mongo client.
func New(cfg config.Config, client *mongo.Client, logger zerolog.Logger) *Server {
	srv := &Server{
		logger:         logger,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}

	storeRepo := mongodoc.NewStoreRepository(srv.database, cfg.StoreCollection)
	uploader := media.NewR2Uploader(media.Config{
		AccountID:       cfg.Media.AccountID,
		AccessKeyID:     cfg.Media.AccessKeyID,
		SecretAccessKey: cfg.Media.SecretAccessKey,
		Bucket:          cfg.Media.Bucket,
		Region:          cfg.Media.Region,
		PublicBaseURL:   cfg.Media.PublicBaseURL,
		Folder:          cfg.Media.Folder,
		ImageTransform:  cfg.Media.ImageTransform,
	}, logger.With().Str("component", "media").Logger())

	srv.storeQueries = application.NewStoreQueryService(storeRepo)
	srv.storeCommands = application.NewStoreCommandService(storeRepo, uploader,
		logger.With().Str("component", "stores").Logger())
	srv.reviewQueries = application.NewReviewQueryService(storeRepo)
	srv.reviewCommands = application.NewReviewCommandService(storeRepo)

	return srv
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	handler := publichttp.NewHandler(publichttp.Config{
		Logger:         s.logger.With().Str("component", "http").Logger(),
		StoreQueries:   s.storeQueries,
		StoreCommands:  s.storeCommands,
		ReviewQueries:  s.reviewQueries,
		ReviewCommands: s.reviewCommands,
	})
	handler.Register(router)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("HTTP server listening")
		errChan <- httpServer.ListenAndServe()
	}()

	s.waitForShutdown(httpServer, errChan)
	return nil
}

// requestLogger emits one structured line per request.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// withCORS adds CORS headers for the configured origins.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// shutdown disconnects the Mongo client with a bounded timeout.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("error disconnecting MongoDB")
	}
}

// waitForShutdown watches ListenAndServe and OS signals for a graceful stop.
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Fatal().Err(err).Msg("server exited unexpectedly")
		}
	case sig := <-sigChan:
		s.logger.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("error during server shutdown")
		}
	}

	s.shutdown(context.Background())
}
