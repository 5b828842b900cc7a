package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	Reports     ReportsConfig     `yaml:"reports"`
	Attachments AttachmentsConfig `yaml:"attachments"`
}

// ServerConfig holds the operational HTTP listener settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// OperationTimeout bounds every unit of work; LockTimeout bounds row lock waits
// inside it. Both surface as domain.ErrTimeout.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectRetries   uint64        `yaml:"connect_retries"    env:"DATABASE_CONNECT_RETRIES"    env-default:"5"`
	OperationTimeout time.Duration `yaml:"operation_timeout"  env:"DATABASE_OPERATION_TIMEOUT"  env-default:"5s"`
	LockTimeout      time.Duration `yaml:"lock_timeout"       env:"DATABASE_LOCK_TIMEOUT"       env-default:"2s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReportsConfig holds report generation and retention settings.
// CleanupSchedule is a five-field cron expression for the in-process
// retention job; empty disables it.
type ReportsConfig struct {
	RetentionDays   int    `yaml:"retention_days"   env:"REPORTS_RETENTION_DAYS"   env-default:"90"`
	MaxGroups       int    `yaml:"max_groups"       env:"REPORTS_MAX_GROUPS"       env-default:"1000"`
	CleanupSchedule string `yaml:"cleanup_schedule" env:"REPORTS_CLEANUP_SCHEDULE" env-default:"30 3 * * *"`
}

// AttachmentsConfig holds attachment metadata limits.
type AttachmentsConfig struct {
	MaxSizeBytes     int64  `yaml:"max_size_bytes"     env:"ATTACHMENTS_MAX_SIZE_BYTES"     env-default:"52428800"`
	StorageKeyPrefix string `yaml:"storage_key_prefix" env:"ATTACHMENTS_STORAGE_KEY_PREFIX" env-default:"defects/"`
}

// RetentionCutoff returns the instant before which reports are expired.
func (c ReportsConfig) RetentionCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -c.RetentionDays)
}
