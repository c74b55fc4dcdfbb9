// Package redis provides Redis client initialization and health checking
// for credential storage backends.
//
// It wraps the go-redis client with URL validation, exponential backoff retry
// logic, and a ping-based connectivity check so callers receive a verified,
// ready-to-use client or a descriptive error.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are supported.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	client, err := redis.Connect(ctx, redis.DefaultConfig())
//	if err != nil {
//		log.Fatal("failed to connect to redis:", err)
//	}
//	defer client.Close()
//
// # Health Checking
//
// Healthcheck returns a probe function suitable for status commands:
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// redis is unreachable
//	}
//
// # Error Handling
//
// Errors are wrapped with package sentinels and can be checked with errors.Is:
//
//	if errors.Is(err, redis.ErrRedisNotReady) {
//		// retry later or fail startup
//	}
package redis
