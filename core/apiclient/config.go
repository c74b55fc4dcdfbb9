package apiclient

import "time"

// Config provides environment-based configuration for the API client.
type Config struct {
	BaseURL string `env:"SERVIO_API_BASE_URL,required"`
	// Timeout bounds a full request attempt including the renewal retry.
	// Zero disables the client-side timeout; contexts still apply.
	Timeout   time.Duration `env:"SERVIO_HTTP_TIMEOUT" envDefault:"0"`
	UserAgent string        `env:"SERVIO_USER_AGENT" envDefault:"servio-admin/1.0"`
}
