package credstore

import "time"

// Backend selects the primary credential store implementation.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config provides environment-based configuration for credential storage.
type Config struct {
	Backend    string        `env:"SERVIO_CREDENTIAL_STORE" envDefault:"file"`
	FilePath   string        `env:"SERVIO_CREDENTIAL_FILE" envDefault:""`
	RedisKey   string        `env:"SERVIO_REDIS_KEY" envDefault:"servio:admin:credential"`
	RedisTTL   time.Duration `env:"SERVIO_REDIS_TTL" envDefault:"0"`
	CookieName string        `env:"SERVIO_COOKIE_NAME" envDefault:"servio_admin_token"`
	CookieTTL  time.Duration `env:"SERVIO_COOKIE_TTL" envDefault:"168h"`
}

// DefaultConfig returns a Config with the file backend and standard cookie
// settings. An empty FilePath resolves to DefaultCredentialPath at store
// construction.
func DefaultConfig() Config {
	return Config{
		Backend:    BackendFile,
		FilePath:   "",
		RedisKey:   "servio:admin:credential",
		RedisTTL:   0,
		CookieName: DefaultCookieName,
		CookieTTL:  DefaultCookieTTL,
	}
}
