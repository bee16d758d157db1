package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fjod/go_storefront/internal/api"
	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/events"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/fjod/go_storefront/internal/session"
	"github.com/fjod/go_storefront/internal/ui"
)

type Config struct {
	HTTPPort        string
	StoreBaseURL    string
	SessionFilePath string
	RedisAddr       string // empty = file-backed session store
	KafkaBrokers    string // empty = no order events
	RequestTimeout  time.Duration
	CheckoutTimeout time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		// The backend default sits on 8080; this client must listen
		// elsewhere.
		HTTPPort:        getEnv("HTTP_PORT", "3000"),
		StoreBaseURL:    getEnv("STORE_API_BASE", "http://localhost:8080"),
		SessionFilePath: getEnv("SESSION_FILE", ".storefront/session.json"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		RequestTimeout:  30 * time.Second,
		// The payment poller alone can take 20s, leave headroom for the
		// other stages.
		CheckoutTimeout: 60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	client := api.NewClient(cfg.StoreBaseURL, cfg.RequestTimeout)

	var store session.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store = session.NewRedisStore(redisClient)
		log.Printf("session store: redis at %s", cfg.RedisAddr)
	} else {
		store = session.NewFileStore(cfg.SessionFilePath)
		log.Printf("session store: file at %s", cfg.SessionFilePath)
	}

	notifier := notify.LogNotifier{}
	identity := session.NewIdentity(store, client)
	synchronizer := cart.NewSynchronizer(client, identity, notifier)
	poller := checkout.NewPoller(client)
	orchestrator := checkout.NewOrchestrator(client, synchronizer, notifier, poller)

	if cfg.KafkaBrokers != "" {
		publisher := events.NewPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
		defer publisher.Close()
		orchestrator = orchestrator.WithEvents(publisher)
		log.Printf("order events: kafka at %s", cfg.KafkaBrokers)
	}

	router := ui.NewRouter(
		ui.NewProductHandler(client, cfg.RequestTimeout),
		ui.NewCartHandler(synchronizer, cfg.RequestTimeout),
		ui.NewCheckoutHandler(orchestrator, synchronizer, cfg.CheckoutTimeout),
		ui.NewOrderHandler(client, synchronizer, cfg.RequestTimeout),
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("storefront listening on :%s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
