package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Records     RecordsConfig     `yaml:"records"`
	ObjectStore ObjectStoreConfig `yaml:"object_store"`
	Upload      UploadConfig      `yaml:"upload"`
	Access      AccessConfig      `yaml:"access"`
	Visibility  VisibilityConfig  `yaml:"visibility"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Access-Pin,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN is only
// required when a postgres-backed driver is selected.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"`
}

// Record repository drivers.
const (
	RecordsDriverSnapshot = "snapshot"
	RecordsDriverPostgres = "postgres"
)

// RecordsConfig selects and configures the record repository.
type RecordsConfig struct {
	Driver           string `yaml:"driver"             env:"RECORDS_DRIVER"             env-default:"snapshot"`
	SnapshotPath     string `yaml:"snapshot_path"      env:"RECORDS_SNAPSHOT_PATH"      env-default:"./data/records.json"`
	TombstonePath    string `yaml:"tombstone_path"     env:"RECORDS_TOMBSTONE_PATH"     env-default:"./data/deleted_files.json"`
	SkipSeedExamples bool   `yaml:"skip_seed_examples" env:"RECORDS_SKIP_SEED_EXAMPLES"`
	SkipStartupSync  bool   `yaml:"skip_startup_sync"  env:"RECORDS_SKIP_STARTUP_SYNC"`
}

// Object store drivers.
const (
	ObjectStoreLocalFS = "localfs"
	ObjectStoreGCS     = "gcs"
)

// ObjectStoreConfig configures where record blobs live.
type ObjectStoreConfig struct {
	Driver          string `yaml:"driver"            env:"OBJECT_STORE_DRIVER"            env-default:"localfs"`
	Prefix          string `yaml:"prefix"            env:"OBJECT_STORE_PREFIX"            env-default:"records/"`
	Root            string `yaml:"root"              env:"OBJECT_STORE_ROOT"              env-default:"./data/blobs"`
	PublicBaseURL   string `yaml:"public_base_url"   env:"OBJECT_STORE_PUBLIC_BASE_URL"   env-default:"http://localhost:5000/files"`
	Bucket          string `yaml:"bucket"            env:"OBJECT_STORE_BUCKET"`
	CredentialsFile string `yaml:"credentials_file"  env:"OBJECT_STORE_CREDENTIALS_FILE"`
}

// UploadConfig bounds record uploads.
type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes" env:"UPLOAD_MAX_BYTES" env-default:"26214400"`
}

// Pin registry drivers.
const (
	PinRegistryNone     = "none"
	PinRegistryPostgres = "postgres"
)

// AccessConfig holds passcode settings.
type AccessConfig struct {
	UserPasscode  string `yaml:"user_passcode"  env:"ACCESS_USER_PASSCODE"  env-default:"7796"`
	AdminPasscode string `yaml:"admin_passcode" env:"ACCESS_ADMIN_PASSCODE" env-default:"7799"`
	PinRegistry   string `yaml:"pin_registry"   env:"ACCESS_PIN_REGISTRY"   env-default:"none"`

	// AllowOpenMutations restores the legacy behavior where upload, archive,
	// delete and board edits are accepted without an admin passcode.
	AllowOpenMutations bool `yaml:"allow_open_mutations" env:"ACCESS_ALLOW_OPEN_MUTATIONS"`
}

// Archived policies for the user tier.
const (
	ArchivedShow = "show"
	ArchivedHide = "hide"
)

// VisibilityConfig holds the per-view archived policy for the user tier.
type VisibilityConfig struct {
	RecordsUserArchived string `yaml:"records_user_archived" env:"VISIBILITY_RECORDS_USER_ARCHIVED" env-default:"show"`
	PortalUserArchived  string `yaml:"portal_user_archived"  env:"VISIBILITY_PORTAL_USER_ARCHIVED"  env-default:"hide"`
}

// RateLimitConfig holds per-IP limits. A negative value disables a limit.
type RateLimitConfig struct {
	ValidatePinPerMinute int `yaml:"validate_pin_per_minute" env:"RATE_LIMIT_VALIDATE_PIN_PER_MINUTE" env-default:"30"`
	FormsPerMinute       int `yaml:"forms_per_minute"        env:"RATE_LIMIT_FORMS_PER_MINUTE"        env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// NeedsDatabase reports whether any configured driver is backed by PostgreSQL.
func (c Config) NeedsDatabase() bool {
	return c.Records.Driver == RecordsDriverPostgres || c.Access.PinRegistry == PinRegistryPostgres
}
