package session

import "time"

// Config holds session manager configuration loaded from the environment.
type Config struct {
	// RefreshInterval is how often the background scheduler renews the
	// stored credential. Zero disables scheduled renewal.
	RefreshInterval time.Duration `env:"SERVIO_REFRESH_INTERVAL" envDefault:"45m"`
}

// DefaultConfig returns a Config with production defaults applied.
func DefaultConfig() Config {
	return Config{
		RefreshInterval: 45 * time.Minute,
	}
}
