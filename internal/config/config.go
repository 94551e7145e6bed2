package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service and worker settings.
type Config struct {
	Port             int
	LogLevel         string
	OperationTimeout time.Duration
	DB               DB
	Kafka            Kafka
	RateLimit        RateLimit
	Publish          Publish
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		d.User, d.Pass, net.JoinHostPort(d.Host, d.Port), d.Name)
}

// Kafka stores broker and topic settings. Empty Brokers disables events.
type Kafka struct {
	Brokers             []string
	RequestEventsTopic  string
	DeliveryEventsTopic string
	GroupID             string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// RateLimit stores per-client HTTP rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Publish stores request event publishing retry settings.
type Publish struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:             defaultPort,
		LogLevel:         defaultLogLevel,
		OperationTimeout: defaultOperationTimeout,
		DB:               DefaultDB(),
		Kafka:            DefaultKafka(),
		RateLimit:        DefaultRateLimit(),
		Publish:          DefaultPublish(),
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	if cfg.OperationTimeout, err = envDuration("OPERATION_TIMEOUT", cfg.OperationTimeout); err != nil {
		return nil, err
	}
	loadDB(&cfg.DB)
	loadKafka(&cfg.Kafka)
	if err = loadRateLimit(&cfg.RateLimit); err != nil {
		return nil, err
	}
	if err = loadPublish(&cfg.Publish); err != nil {
		return nil, err
	}

	fs := pflag.CommandLine
	fs.IntVar(&cfg.Port, "port", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringSliceVar(&cfg.Kafka.Brokers, "kafka-brokers", cfg.Kafka.Brokers, "comma separated Kafka brokers")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if p, err := strconv.Atoi(c.DB.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid POSTGRES_PORT: %q", c.DB.Port)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid OPERATION_TIMEOUT: %s", c.OperationTimeout)
	}
	if c.Kafka.Enabled() && (c.Kafka.RequestEventsTopic == "" || c.Kafka.DeliveryEventsTopic == "") {
		return fmt.Errorf("kafka brokers set without topics")
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rps=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	if c.Publish.MaxAttempts <= 0 {
		return fmt.Errorf("invalid PUBLISH_MAX_ATTEMPTS: %d", c.Publish.MaxAttempts)
	}
	return nil
}

func loadDB(db *DB) {
	db.Host = envString("POSTGRES_HOST", db.Host)
	db.Port = envString("POSTGRES_PORT", db.Port)
	db.User = envString("POSTGRES_USER", db.User)
	db.Pass = envString("POSTGRES_PASSWORD", db.Pass)
	db.Name = envString("POSTGRES_DB", db.Name)
}

func loadKafka(k *Kafka) {
	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		k.Brokers = splitList(v)
	}
	k.RequestEventsTopic = envString("KAFKA_REQUEST_EVENTS_TOPIC", k.RequestEventsTopic)
	k.DeliveryEventsTopic = envString("KAFKA_DELIVERY_EVENTS_TOPIC", k.DeliveryEventsTopic)
	k.GroupID = envString("KAFKA_GROUP_ID", k.GroupID)
}

func loadRateLimit(rl *RateLimit) error {
	var err error
	if rl.Enabled, err = envBool("RATE_LIMIT_ENABLED", rl.Enabled); err != nil {
		return err
	}
	if rl.Rate, err = envFloat("RATE_LIMIT_RPS", rl.Rate); err != nil {
		return err
	}
	if rl.Burst, err = envInt("RATE_LIMIT_BURST", rl.Burst); err != nil {
		return err
	}
	if rl.TTL, err = envDuration("RATE_LIMIT_TTL", rl.TTL); err != nil {
		return err
	}
	if rl.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets); err != nil {
		return err
	}
	return nil
}

func loadPublish(p *Publish) error {
	var err error
	if p.MaxAttempts, err = envInt("PUBLISH_MAX_ATTEMPTS", p.MaxAttempts); err != nil {
		return err
	}
	if p.BaseDelay, err = envDuration("PUBLISH_BASE_DELAY", p.BaseDelay); err != nil {
		return err
	}
	if p.MaxDelay, err = envDuration("PUBLISH_MAX_DELAY", p.MaxDelay); err != nil {
		return err
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
