package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// BankAccount holds payment routing details returned for bank transfer orders.
type BankAccount struct {
	Name          string
	Number        string
	AccountHolder string
}

// SMTP holds outbound mail settings. An empty host switches the notifier to
// log-only delivery.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	CustomerTokenSecret string
	AdminTokenSecret    string
	TokenDomainOrder    string
	TokenTTL            time.Duration
	Bank                BankAccount
	Mail                SMTP
	NotifyQueueSize     int
	NotifyWorkers       int
	ShutdownTimeout     time.Duration
	ResponseTimezone    string
}

const (
	defaultRunAddress       = ":8080"
	defaultCustomerSecret   = "change-me-customer"
	defaultAdminSecret      = "change-me-admin"
	defaultTokenDomainOrder = "customer,admin"
	defaultTokenTTL         = 24 * time.Hour
	defaultNotifyQueueSize  = 128
	defaultNotifyWorkers    = 2
	defaultShutdownTimeout  = 10 * time.Second
	defaultTimezone         = "Asia/Ho_Chi_Minh"
)

// Load parses configuration from an optional .env file, environment
// variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		CustomerTokenSecret: getString(lookup, "USER_SECRET_KEY", defaultCustomerSecret),
		AdminTokenSecret:    getString(lookup, "ADMIN_SECRET_KEY", defaultAdminSecret),
		TokenDomainOrder:    getString(lookup, "TOKEN_DOMAIN_ORDER", defaultTokenDomainOrder),
		TokenTTL:            getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		Bank: BankAccount{
			Name:          getString(lookup, "BANK_NAME", ""),
			Number:        getString(lookup, "BANK_NUMBER", ""),
			AccountHolder: getString(lookup, "BANK_ACCOUNT_NAME", ""),
		},
		Mail: SMTP{
			Host:     getString(lookup, "SMTP_HOST", ""),
			Port:     getInt(lookup, "SMTP_PORT", 587),
			Username: getString(lookup, "SMTP_USERNAME", ""),
			Password: getString(lookup, "SMTP_PASSWORD", ""),
			From:     getString(lookup, "EMAIL_FROM", "no-reply@storefront.local"),
		},
		NotifyQueueSize:  getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyWorkers:    getInt(lookup, "NOTIFY_WORKERS", defaultNotifyWorkers),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ResponseTimezone: getString(lookup, "RESPONSE_TIMEZONE", defaultTimezone),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenDomainOrder, "token-domains", cfg.TokenDomainOrder, "Comma separated token verification trial order")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Bearer token lifetime")
	fs.IntVar(&cfg.NotifyWorkers, "notify-workers", cfg.NotifyWorkers, "Number of concurrent notification workers")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyWorkers <= 0 {
		cfg.NotifyWorkers = defaultNotifyWorkers
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
