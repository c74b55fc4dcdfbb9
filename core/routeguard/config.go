package routeguard

// Config holds route guard configuration loaded from the environment.
type Config struct {
	// LoginPath is where redirect decisions send the user.
	LoginPath string `env:"SERVIO_LOGIN_PATH" envDefault:"/login"`
}

// DefaultConfig returns a Config with production defaults applied.
func DefaultConfig() Config {
	return Config{
		LoginPath: "/login",
	}
}
