package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultUploadMaxBytes = 32 << 20

	defaultMaxOpenConns = 25
	defaultMaxIdleConns = 5
	defaultTxMaxRetries = 3
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.upload_max_bytes": defaultUploadMaxBytes,
		"server.download_timeout": "5m",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8081",
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",

		"database.driver":            DriverMemory,
		"database.dsn":               "",
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": "1h",
		"database.tx_max_retries":    defaultTxMaxRetries,

		"redis.enabled":        false,
		"redis.addr":           "localhost:6379",
		"redis.password":       "",
		"redis.db":             0,
		"redis.channel_prefix": "projects",
		"redis.user_cache_ttl": "5m",

		"storage.driver":            StorageMemory,
		"storage.bucket":            "files",
		"storage.region":            "us-east-1",
		"storage.endpoint":          "",
		"storage.access_key_id":     "",
		"storage.secret_access_key": "",
		"storage.use_path_style":    false,

		"auth.jwt_secret": "",
		"auth.issuer":     "",

		"domain.reject_same_status": true,
	}
}
