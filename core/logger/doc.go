// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers environment-specific configurations, context-aware attribute extraction,
// and a set of pre-built attributes for common logging scenarios.
//
// # Basic Usage
//
// Create loggers using the factory function with various configuration options:
//
//	import "github.com/Mbii55/servio-admin-sub000/core/logger"
//
//	// Create a development logger
//	log := logger.New(
//		logger.WithDevelopment("servio-admin"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	// Create a production logger
//	log := logger.New(
//		logger.WithProduction("servio-admin"),
//	)
//
//	// Use the logger
//	log.Info("Session initialized",
//		logger.Component("session"),
//		logger.Event("initialize"),
//	)
//
// # Environment Configurations
//
// The package provides pre-configured setups for different environments:
//
//	// Development: text format, debug level, stdout
//	devLogger := logger.New(logger.WithDevelopment("servio-admin"))
//
//	// Production: JSON format, info level, stdout
//	prodLogger := logger.New(logger.WithProduction("servio-admin"))
//
//	// Staging: JSON format, info level, stdout
//	stageLogger := logger.New(logger.WithStaging("servio-admin"))
//
//	// Custom configuration
//	customLogger := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "admin-console")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Context-Aware Logging
//
// Extract and inject attributes automatically from context values:
//
//	// Create logger with context extractors
//	log := logger.New(
//		logger.WithProduction("servio-admin"),
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			if id, ok := apiclient.RequestIDFromContext(ctx); ok {
//				return logger.RequestID(id), true
//			}
//			return slog.Attr{}, false
//		}),
//	)
//
//	// Log with automatic context attribute injection
//	log.InfoContext(ctx, "Processing request")
//	// Output: {"level":"INFO","msg":"Processing request","request_id":"req-12345"}
//
// # Attribute Helpers
//
// The package provides helper functions for creating common attributes:
//
//	// Error handling
//	log.Error("Renewal failed",
//		logger.Error(err),
//		logger.Component("session"),
//		logger.Action("renew"),
//	)
//
//	// Multiple errors
//	log.Warn("Credential write incomplete",
//		logger.Errors(storeErr, cookieErr),
//	)
//
//	// HTTP logging
//	log.Debug("Request completed",
//		logger.Method("POST"),
//		logger.Path("/auth/login"),
//		logger.StatusCode(200),
//		logger.Duration(time.Since(start)),
//	)
//
// # Global Logger Setup
//
// Set up a global default logger for your application:
//
//	func initLogging() {
//		var log *slog.Logger
//
//		switch os.Getenv("APP_ENV") {
//		case "production":
//			log = logger.New(logger.WithProduction("servio-admin"))
//		case "staging":
//			log = logger.New(logger.WithStaging("servio-admin"))
//		default:
//			log = logger.New(logger.WithDevelopment("servio-admin"))
//		}
//
//		// Set as global default
//		logger.SetAsDefault(log)
//	}
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	func TestLogging(t *testing.T) {
//		var buf bytes.Buffer
//		log := logger.New(
//			logger.WithJSONFormatter(),
//			logger.WithOutput(&buf),
//		)
//
//		log.Info("Test message", logger.Component("test"))
//
//		output := buf.String()
//		assert.Contains(t, output, "Test message")
//		assert.Contains(t, output, `"component":"test"`)
//	}
package logger
