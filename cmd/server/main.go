package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"event-hub/backend/internal/audit"
	auditproducer "event-hub/backend/internal/audit/producer"
	"event-hub/backend/internal/config"
	"event-hub/backend/internal/db"
	eventhandler "event-hub/backend/internal/event/handler"
	eventrepo "event-hub/backend/internal/event/repository"
	identityhandler "event-hub/backend/internal/identity/handler"
	identityservice "event-hub/backend/internal/identity/service"
	"event-hub/backend/internal/platform/rbac"
	reviewhandler "event-hub/backend/internal/review/handler"
	reviewrepo "event-hub/backend/internal/review/repository"
	"event-hub/backend/internal/security"
	"event-hub/backend/internal/server"
	"event-hub/backend/internal/session"
	otelsetup "event-hub/backend/internal/telemetry/otel"
	tickethandler "event-hub/backend/internal/ticket/handler"
	ticketrepo "event-hub/backend/internal/ticket/repository"
	userrepo "event-hub/backend/internal/user/repository"
)

const serviceName = "event-hub"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("postgres connect failed")
	}
	defer pool.Close()

	redisClient, err := session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.WithError(err).Fatal("redis connect failed")
	}
	defer redisClient.Close()

	mongoClient, err := reviewrepo.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		logger.WithError(err).Fatal("mongo connect failed")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(closeCtx)
	}()

	providers, err := otelsetup.NewProviders(ctx, cfg.OTLPEndpoint, serviceName, false)
	if err != nil {
		logger.WithError(err).Fatal("tracing setup failed")
	}
	defer func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = providers.Shutdown(shutCtx)
	}()
	tracer := providers.TracerProvider.Tracer(serviceName)

	var emitter audit.Emitter
	producer, err := auditproducer.NewKafkaProducer(cfg.KafkaBrokersList(), cfg.AuditKafkaTopic)
	if err != nil {
		logger.WithError(err).Fatal("audit producer setup failed")
	}
	if producer != nil {
		emitter = producer
		defer producer.Close()
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	tokens, err := security.NewTokenProvider([]byte(cfg.JWTSecret), cfg.AccessTTL())
	if err != nil {
		logger.WithError(err).Fatal("token provider setup failed")
	}

	authz, err := rbac.NewAuthorizer(ctx)
	if err != nil {
		logger.WithError(err).Fatal("rbac setup failed")
	}

	users := userrepo.NewPostgresRepository(pool)
	events := eventrepo.NewPostgresRepository(pool)
	tickets := ticketrepo.NewPostgresRepository(pool)
	reviews := reviewrepo.NewMongoRepository(mongoClient, cfg.MongoDatabase)
	cache := session.NewRedisCache(redisClient)

	authService := identityservice.NewAuthService(users, cache, hasher, tokens)

	handlers := server.Handlers{
		Auth:    identityhandler.NewAuthHandler(authService, emitter, logger),
		Events:  eventhandler.NewEventHandler(events, logger),
		Tickets: tickethandler.NewTicketHandler(tickets, events, logger),
		Reviews: reviewhandler.NewReviewHandler(reviews, events, logger),
	}
	router := server.NewRouter(handlers, authService.Authenticator(), authz, tracer, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("serve failed")
		}
	}()

	<-ctx.Done()
	stop()

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown failed")
	}
	// Give in-flight audit emissions a chance to flush.
	time.Sleep(audit.ShutdownDrainDuration)
	logger.Info("http server stopped")
}
