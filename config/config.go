package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const defaultMaxRequestBodySize = "100KB"

// Engine defaults applied when the alerting block is absent or partial.
const (
	DefaultCooldown               = time.Hour
	DefaultOfflineAfter           = 15 * time.Minute
	DefaultLowBatteryPercent      = 20
	DefaultCriticalBatteryPercent = 10
	DefaultInactivityMinutes      = 30
	DefaultLaneIdleTimeout        = 2 * time.Minute
	DefaultLaneBuffer             = 64
	DefaultSweepInterval          = 5 * time.Minute
	DefaultSweepBatchSize         = 200
	DefaultRealtimeSendBuffer     = 256
	DefaultWorkerPort             = 3002
	DefaultSlowQueryThreshold     = 200 * time.Millisecond
	DefaultPoolWaitWarning        = 50 * time.Millisecond
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP *HTTPConfig `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tunes schema management and query diagnostics
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Ingest guards the device-facing fix endpoint
	Ingest *IngestConfig `json:"ingest" yaml:"ingest"`

	// Alerting tunes the evaluation engine and the per-device lanes
	Alerting *AlertingConfig `json:"alerting" yaml:"alerting"`

	// Sweeper runs periodic device status and inactivity checks
	Sweeper *SweeperConfig `json:"sweeper" yaml:"sweeper"`

	// Realtime configures websocket fan-out
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for the alert push relay
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configures the push worker process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// HTTPConfig defines the API listener. The push worker shares its timeouts.
type HTTPConfig struct {
	Port               int    `json:"port" yaml:"port"`
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           struct {
		ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"timeouts" yaml:"timeouts"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines schema management and query diagnostics
type DatabaseConfig struct {
	// AutoMigrate creates or updates the schema on start
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold logs queries slower than this at warn
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// PoolWaitWarning logs connection pool waits longer than this at warn
	PoolWaitWarning time.Duration `json:"poolWaitWarning" yaml:"poolWaitWarning"`
}

// WorkerConfig defines the push worker process
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// IngestConfig defines the device ingest guard
type IngestConfig struct {
	// APIKey is compared with the X-Api-Key header. Empty leaves ingest open.
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// AlertingConfig defines thresholds and scheduling of alert evaluation
type AlertingConfig struct {
	Cooldown                 time.Duration `json:"cooldown" yaml:"cooldown"`
	OfflineAfter             time.Duration `json:"offlineAfter" yaml:"offlineAfter"`
	LowBatteryPercent        int           `json:"lowBatteryPercent" yaml:"lowBatteryPercent"`
	CriticalBatteryPercent   int           `json:"criticalBatteryPercent" yaml:"criticalBatteryPercent"`
	DefaultInactivityMinutes int           `json:"defaultInactivityMinutes" yaml:"defaultInactivityMinutes"`

	// LaneIdleTimeout reaps the goroutine of a device that stopped reporting
	LaneIdleTimeout time.Duration `json:"laneIdleTimeout" yaml:"laneIdleTimeout"`

	// LaneBuffer is the number of queued fixes per device
	LaneBuffer int `json:"laneBuffer" yaml:"laneBuffer"`
}

// SweeperConfig defines the periodic health sweep
type SweeperConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Interval  time.Duration `json:"interval" yaml:"interval"`
	BatchSize int           `json:"batchSize" yaml:"batchSize"`
}

// RealtimeConfig defines websocket delivery
type RealtimeConfig struct {
	// Provider type: "local" for a single instance or "redis" for cross-instance fan-out
	Provider   string       `json:"provider" yaml:"provider"`
	SendBuffer int          `json:"sendBuffer" yaml:"sendBuffer"`
	Redis      *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the Redis connection used by the realtime relay
type RedisConfig struct {
	Host      string `json:"host" yaml:"host"`
	Port      int    `json:"port" yaml:"port"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// New loads config.yaml, overlays the environment and fills defaults.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills unset settings so every section is non-nil.
func (c *Config) ApplyDefaults() {
	if c.HTTP == nil {
		c.HTTP = &HTTPConfig{}
	}
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Alerting == nil {
		c.Alerting = &AlertingConfig{}
	}
	a := c.Alerting
	if a.Cooldown <= 0 {
		a.Cooldown = DefaultCooldown
	}
	if a.OfflineAfter <= 0 {
		a.OfflineAfter = DefaultOfflineAfter
	}
	if a.LowBatteryPercent <= 0 {
		a.LowBatteryPercent = DefaultLowBatteryPercent
	}
	if a.CriticalBatteryPercent <= 0 {
		a.CriticalBatteryPercent = DefaultCriticalBatteryPercent
	}
	if a.DefaultInactivityMinutes <= 0 {
		a.DefaultInactivityMinutes = DefaultInactivityMinutes
	}
	if a.LaneIdleTimeout <= 0 {
		a.LaneIdleTimeout = DefaultLaneIdleTimeout
	}
	if a.LaneBuffer <= 0 {
		a.LaneBuffer = DefaultLaneBuffer
	}

	if c.Sweeper == nil {
		c.Sweeper = &SweeperConfig{}
	}
	if c.Sweeper.Interval <= 0 {
		c.Sweeper.Interval = DefaultSweepInterval
	}
	if c.Sweeper.BatchSize <= 0 {
		c.Sweeper.BatchSize = DefaultSweepBatchSize
	}

	if c.Realtime == nil {
		c.Realtime = &RealtimeConfig{}
	}
	if c.Realtime.SendBuffer <= 0 {
		c.Realtime.SendBuffer = DefaultRealtimeSendBuffer
	}

	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	if c.Database.SlowQueryThreshold <= 0 {
		c.Database.SlowQueryThreshold = DefaultSlowQueryThreshold
	}
	if c.Database.PoolWaitWarning <= 0 {
		c.Database.PoolWaitWarning = DefaultPoolWaitWarning
	}

	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port <= 0 {
		c.Worker.Port = DefaultWorkerPort
	}
}
