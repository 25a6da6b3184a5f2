package config

import (
	"time"
)

const EnvironmentProduction = "production"

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	Environment string `envconfig:"environment" default:"development"`

	// EncryptionSecret derives the key protecting sensitive columns.
	// Mandatory in production, a development key is substituted elsewhere.
	EncryptionSecret string `envconfig:"encryption_secret"`

	// StorageBackend selects the database flavor, "server" for PostgreSQL
	// or "embedded" for a local SQLite file.
	StorageBackend string `envconfig:"storage_backend" default:"server"`

	DSN string `envconfig:"DSN"`

	SQLitePath string `envconfig:"sqlite_path" default:"timetrack.db"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}

func (s *EnvSpec) IsProduction() bool {
	return s.Environment == EnvironmentProduction
}
