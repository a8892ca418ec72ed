package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend names accepted by STORE_BACKEND and SESSION_BACKEND.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=leadflow-dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Leads   LeadsConfig
	Session SessionConfig

	Mongo MongoConfig
	Redis RedisConfig
}

type LeadsConfig struct {
	// Latency is the simulated delay applied to every lead operation.
	Latency  time.Duration `env:"LEAD_LATENCY,   default=500ms"`
	PageSize int           `env:"PAGE_SIZE,      default=10"`
	SeedDemo bool          `env:"SEED_DEMO_DATA, default=true"`
	Backend  string        `env:"STORE_BACKEND,  default=memory"`
}

// SessionConfig selects where the session lives. The memory default keeps
// local runs dependency-free; only the redis backend survives a restart.
type SessionConfig struct {
	Backend      string `env:"SESSION_BACKEND, default=memory"`
	DemoEmail    string `env:"DEMO_EMAIL,      default=demo@leadflow.com"`
	DemoPassword string `env:"DEMO_PASSWORD,   default=password"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=leadflow"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsDevelopment reports whether human-friendly output should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Leads.Backend {
	case BackendMemory, BackendMongo:
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendMemory, BackendMongo, c.Leads.Backend)
	}
	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.Session.Backend)
	}
	if c.Leads.PageSize < 1 || c.Leads.PageSize > 100 {
		return fmt.Errorf("PAGE_SIZE must be between 1 and 100, got %d", c.Leads.PageSize)
	}
	if c.Leads.Latency < 0 {
		return fmt.Errorf("LEAD_LATENCY must not be negative, got %s", c.Leads.Latency)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	return nil
}
