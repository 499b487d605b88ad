package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	catalogapp "github.com/havenrealty/listings-api/internal/catalog/application"
	"github.com/havenrealty/listings-api/internal/catalog/fixture"
	"github.com/havenrealty/listings-api/internal/config"
	"github.com/havenrealty/listings-api/internal/infrastructure/cache"
	"github.com/havenrealty/listings-api/internal/infrastructure/memory"
	mongodoc "github.com/havenrealty/listings-api/internal/infrastructure/mongo"
	"github.com/havenrealty/listings-api/internal/infrastructure/notify"
	inquiryapp "github.com/havenrealty/listings-api/internal/inquiry/application"
	"github.com/havenrealty/listings-api/internal/interfaces/http/common"
	publichttp "github.com/havenrealty/listings-api/internal/interfaces/http/public"
)

// Server is the composition root: it builds the catalogue, the inquiry pipeline and the router,
// and owns the lifecycle of everything it opened.
type Server struct {
	cfg       config.Config
	logger    *logrus.Logger
	client    *mongo.Client
	store     *catalogapp.Store
	cache     *cache.ResultCache
	retry     *inquiryapp.RetryJob
	scheduler *cron.Cron
	publisher *notify.AMQPPublisher
	router    http.Handler
}

// New wires every component. client may be nil, in which case the compiled-in
// catalogue and in-memory inquiry storage are used.
func New(cfg config.Config, client *mongo.Client) (*Server, error) {
	logger := cfg.ServerLog
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Server{cfg: cfg, logger: logger, client: client}

	store, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	s.store = store
	logger.WithFields(logrus.Fields{
		"source":     cfg.CatalogSource,
		"properties": len(store.Properties()),
		"agents":     len(store.Agents()),
	}).Info("catalogue loaded")

	s.cache = cache.New(cache.Config{
		MaxSize:       cfg.QueryCacheSize,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		MemcachedHost: cfg.MemcachedHost,
		Logger:        logger,
	})
	queries := catalogapp.NewCachedQueryService(catalogapp.NewQueryService(store), store, s.cache, cfg.QueryCacheTTL, logger)

	var (
		inquiries inquiryapp.Repository
		failures  inquiryapp.FailedNotificationRepository
	)
	if client != nil {
		db := client.Database(cfg.MongoDatabase)
		inquiries = mongodoc.NewInquiryRepository(db, cfg.InquiryCollection)
		failures = mongodoc.NewFailedNotificationRepository(db, cfg.FailedNotificationCollection)
	} else {
		inquiries = memory.NewInquiryRepository()
		failures = memory.NewFailedNotificationRepository()
	}

	notifiers := s.buildNotifiers()
	commands := inquiryapp.NewCommandService(inquiryapp.Config{
		Repository:    inquiries,
		Failures:      failures,
		Properties:    store,
		Notifiers:     notifiers,
		Receipts:      inquiryapp.NewReceiptIssuer(cfg.ReceiptSecret, cfg.ReceiptIssuer, cfg.ReceiptTTL),
		Logger:        logger,
		NotifyTimeout: cfg.NotifyTimeout,
	})
	s.retry = inquiryapp.NewRetryJob(inquiryapp.RetryConfig{
		Repository: inquiries,
		Failures:   failures,
		Notifiers:  notifiers,
		Logger:     logger,
		Timeout:    cfg.NotifyTimeout,
	})

	s.router = s.routes(publichttp.NewHandler(publichttp.Config{
		Logger:    logger,
		Listings:  queries,
		Inquiries: commands,
	}))
	return s, nil
}

func (s *Server) loadCatalog() (*catalogapp.Store, error) {
	if s.cfg.CatalogSource != config.CatalogSourceMongo {
		return catalogapp.NewStore(fixture.Properties(), fixture.Agents())
	}
	if s.client == nil {
		return nil, errors.New("mongo catalogue requested without a MongoDB client")
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()
	loader := mongodoc.NewCatalogLoader(s.client.Database(s.cfg.MongoDatabase), s.cfg.PropertyCollection, s.cfg.AgentCollection)
	store, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalogue from mongo: %w", err)
	}
	return store, nil
}

func (s *Server) buildNotifiers() []inquiryapp.Notifier {
	notifiers := []inquiryapp.Notifier{notify.NewLogNotifier(s.logger)}

	if s.cfg.SendGridAPIKey != "" {
		mailer := notify.NewSendGridMailer(notify.SendGridConfig{
			APIKey:           s.cfg.SendGridAPIKey,
			FromEmail:        s.cfg.SendGridFromEmail,
			OfficeEmail:      s.cfg.OfficeEmail,
			OrganizationName: s.cfg.OrganizationName,
			Agents:           s.store,
		})
		notifiers = append(notifiers, mailer.AgentNotifier(), mailer.AcknowledgementNotifier())
	}

	if s.cfg.RabbitMQURL != "" {
		publisher, err := notify.NewAMQPPublisher(s.cfg.RabbitMQURL, s.cfg.InquiryQueue, s.logger)
		if err != nil {
			s.logger.WithError(err).Warn("inquiry events disabled: could not reach RabbitMQ")
		} else {
			s.publisher = publisher
			notifiers = append(notifiers, publisher)
		}
	}
	return notifiers
}

func (s *Server) routes(public *publichttp.Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	router.Use(middleware.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}).Handler)

	router.Get("/healthz", s.healthHandler())
	public.Register(router)
	return router
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the retry scheduler and the HTTP server, and blocks until shutdown.
func (s *Server) Run() error {
	scheduler, err := s.retry.Schedule(s.cfg.NotifyRetrySchedule)
	if err != nil {
		return fmt.Errorf("schedule notification retries: %w", err)
	}
	s.scheduler = scheduler

	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Infof("HTTP server listening on %s", s.cfg.Addr)
		errChan <- httpServer.ListenAndServe()
	}()

	return waitForShutdown(httpServer, errChan, s)
}

// healthHandler reports infrastructure state only. Without MongoDB there is nothing to ping.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if s.client != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
				common.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
					"error":  err.Error(),
				})
				return
			}
		}

		common.WriteJSON(s.logger, w, http.StatusOK, map[string]any{
			"status":     "ok",
			"catalog":    s.cfg.CatalogSource,
			"properties": len(s.store.Properties()),
			"time":       time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// Close releases everything New and Run opened.
func (s *Server) Close(ctx context.Context) {
	if s.scheduler != nil {
		<-s.scheduler.Stop().Done()
	}
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.logger.WithError(err).Warn("closing inquiry publisher")
		}
	}
	if s.cache != nil {
		s.cache.Stop()
	}
	if s.client != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := s.client.Disconnect(shutdownCtx); err != nil {
			s.logger.WithError(err).Warn("MongoDB disconnect failed")
		}
	}
}

// waitForShutdown blocks until ListenAndServe returns or the process is signalled, then shuts down gracefully.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		srv.Close(context.Background())
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case sig := <-sigChan:
		srv.logger.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.WithError(err).Error("graceful shutdown failed")
		}
		srv.Close(ctx)
		return nil
	}
}
