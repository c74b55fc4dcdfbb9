// Package main provides the entry point for servio-admin.
//
// servio-admin is the command-line admin console for the Servio services
// marketplace:
//
//   - Session lifecycle (login, logout, whoami, status, watch)
//   - Category management (list, get, create, update, delete)
//   - Booking oversight (list, get, set-status)
//   - Provider verification (list, get, verify, unverify)
//   - Service listings and review moderation
//   - Identity document review (approve, reject)
//
// Usage:
//
//	servio-admin [command] [flags]
//	servio-admin login --email admin@servio.example
//	servio-admin bookings list --status pending --output json
//
// Configuration comes from the environment; SERVIO_API_BASE_URL is required.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp()
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
