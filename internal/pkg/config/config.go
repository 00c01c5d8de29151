package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.)
// - default: Values common across all environments (timeouts, TTLs, retry budgets)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Backend BackendConfig
	Cache   CacheConfig
	Storage StorageConfig
	Gate    GateConfig
	Claim   ClaimConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:4200,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

// BackendConfig describes the external REST API every collaborator talks to.
type BackendConfig struct {
	BaseURL        string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	DefaultTimeout time.Duration `envconfig:"BACKEND_DEFAULT_TIMEOUT" default:"8s"`
	ShortTimeout   time.Duration `envconfig:"BACKEND_SHORT_TIMEOUT" default:"5s"`
	MaxRetries     uint          `envconfig:"BACKEND_MAX_RETRIES" default:"1"`
	RetryInterval  time.Duration `envconfig:"BACKEND_RETRY_INTERVAL" default:"300ms"`
}

type CacheConfig struct {
	DefaultTTL    time.Duration `envconfig:"CACHE_DEFAULT_TTL" default:"5m"`
	SweepInterval time.Duration `envconfig:"CACHE_SWEEP_INTERVAL" default:"15m"`
}

// StorageConfig selects where the persisted client state lives.
// Backend is one of memory, file, redis or postgres.
type StorageConfig struct {
	Backend       string `envconfig:"STORAGE_BACKEND" default:"file"`
	Namespace     string `envconfig:"STORAGE_NAMESPACE" default:"default"`
	FilePath      string `envconfig:"STORAGE_FILE_PATH" default:".zavvi/state.json"`
	RedisAddr     string `envconfig:"STORAGE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"STORAGE_REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"STORAGE_REDIS_DB" default:"0"`
	KeyPrefix     string `envconfig:"STORAGE_KEY_PREFIX" default:"zavvi:state"`
	PostgresDSN   string `envconfig:"STORAGE_POSTGRES_DSN"`
}

type GateConfig struct {
	FetchTimeout  time.Duration `envconfig:"GATE_FETCH_TIMEOUT" default:"15s"`
	AutoRetries   uint          `envconfig:"GATE_AUTO_RETRIES" default:"2"`
	ManualRetries int           `envconfig:"GATE_MANUAL_RETRIES" default:"3"`
}

type ClaimConfig struct {
	VendorPortalURL string        `envconfig:"VENDOR_PORTAL_URL" default:"https://admin.zavvi.co.in"`
	QRSize          int           `envconfig:"CLAIM_QR_SIZE" default:"300"`
	StepTimeout     time.Duration `envconfig:"CLAIM_STEP_TIMEOUT" default:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Backend: BackendConfig{
			BaseURL:        "http://localhost:5000/api",
			DefaultTimeout: 2 * time.Second,
			ShortTimeout:   time.Second,
			MaxRetries:     1,
			RetryInterval:  time.Millisecond,
		},
		Cache: CacheConfig{
			DefaultTTL:    5 * time.Minute,
			SweepInterval: 15 * time.Minute,
		},
		Storage: StorageConfig{
			Backend:   "memory",
			Namespace: "test",
			KeyPrefix: "zavvi:test",
		},
		Gate: GateConfig{
			FetchTimeout:  time.Second,
			AutoRetries:   2,
			ManualRetries: 3,
		},
		Claim: ClaimConfig{
			VendorPortalURL: "https://admin.zavvi.co.in",
			QRSize:          300,
			StepTimeout:     2 * time.Second,
		},
	}
}
