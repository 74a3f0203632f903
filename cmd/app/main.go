package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/spacify/api"
	"github.com/Domenick1991/spacify/config"
	"github.com/Domenick1991/spacify/internal/bootstrap"
	"github.com/Domenick1991/spacify/internal/cache"
	"github.com/Domenick1991/spacify/internal/kafka"
	"github.com/Domenick1991/spacify/internal/logging"
	"github.com/Domenick1991/spacify/internal/repository"
	"github.com/Domenick1991/spacify/internal/service/advice"
	"github.com/Domenick1991/spacify/internal/service/checkout"
	"github.com/Domenick1991/spacify/internal/service/ledger"
	"github.com/Domenick1991/spacify/internal/service/notifications"
	"github.com/Domenick1991/spacify/internal/service/offers"
	"github.com/Domenick1991/spacify/internal/service/preferences"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Offers.CacheTTL)

	pingCtx, cancelPing := context.WithTimeout(ctx, 2*time.Second)
	prefsKV := cache.ReachableKV(pingCtx, redisCache, logger)
	cancelPing()

	store := preferences.NewStore(prefsKV, logger)
	if err := store.Load(ctx); err != nil {
		logger.Warn("preferences unavailable, using defaults", "error", err)
	}

	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		dialCtx, cancelDial := context.WithTimeout(ctx, 5*time.Second)
		p, err := kafka.Connect(dialCtx, cfg.Kafka.Brokers, logger)
		cancelDial()
		if err != nil {
			logger.Warn("kafka unavailable, events stay local", "error", err)
		} else {
			producer = p
			defer producer.Close()
		}
	}

	var offerRepo repository.OfferRepository
	ledgerOpts := []ledger.Option{ledger.WithLocalizer(store), ledger.WithLogger(logger)}
	switch cfg.Offers.Source {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer pool.Close()
		offerRepo = repository.NewOfferRepository(pool)
		ledgerOpts = append(ledgerOpts, ledger.WithArchive(repository.NewBookingArchive(pool)))
	default:
		offerRepo = repository.NewStaticOfferRepository(repository.DefaultOffers())
	}

	feedOpts := []notifications.FeedOption{notifications.WithLogger(logger)}
	if producer != nil {
		feedOpts = append(feedOpts, notifications.WithProducer(producer, cfg.Kafka.NotificationsTopic))
		ledgerOpts = append(ledgerOpts, ledger.WithProducer(producer, cfg.Kafka.BookingTopic))
	}
	feed := notifications.NewFeed(feedOpts...)
	feed.Post(ctx, notifications.Welcome(store.Language()))

	bookingLedger := ledger.New(feed, ledgerOpts...)
	if err := bookingLedger.Restore(ctx); err != nil {
		logger.Warn("booking archive unavailable", "error", err)
	}

	taxRate, err := decimal.NewFromString(cfg.Checkout.TaxRate)
	if err != nil {
		return err
	}
	workflow := checkout.NewWorkflow(bookingLedger, feed,
		checkout.WithDelays(cfg.Checkout.SettlementDelay, cfg.Checkout.DisplayDelay),
		checkout.WithTaxRate(taxRate),
		checkout.WithLocalizer(store),
		checkout.WithLogger(logger),
	)

	var generator advice.Generator
	if cfg.Advice.APIKey != "" {
		g, err := advice.NewGenAIGenerator(ctx, cfg.Advice.APIKey, cfg.Advice.Model)
		if err != nil {
			logger.Warn("advice generator unavailable", "error", err)
		} else {
			generator = g
		}
	}
	bridge := advice.NewBridge(generator,
		advice.WithTemperature(cfg.Advice.Temperature),
		advice.WithTimeout(cfg.Advice.Timeout),
		advice.WithLogger(logger),
	)

	offerService := offers.NewOfferService(offerRepo, redisCache, logger)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.Handlers{
		Offers:        api.NewOfferHandler(offerService, workflow),
		Checkout:      api.NewCheckoutHandler(offerService, workflow),
		Bookings:      api.NewBookingHandler(bookingLedger),
		Notifications: api.NewNotificationHandler(feed),
		Advice:        api.NewAdviceHandler(bridge, store),
		Profile:       api.NewProfileHandler(store),
	})

	return bootstrap.Run(ctx, cfg, router, logger)
}
