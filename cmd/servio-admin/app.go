package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/Mbii55/servio-admin-sub000/app/console"
	"github.com/Mbii55/servio-admin-sub000/core/config"
	"github.com/Mbii55/servio-admin-sub000/core/logger"
	"github.com/Mbii55/servio-admin-sub000/core/routeguard"
	"github.com/Mbii55/servio-admin-sub000/core/session"
	"github.com/Mbii55/servio-admin-sub000/integration/marketplace"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const consoleKey = "console"

var errNotSignedIn = errors.New(`not signed in: run "servio-admin login"`)

// newApp creates the CLI application.
func newApp() *cli.App {
	return &cli.App{
		Name:     "servio-admin",
		Usage:    "Servio marketplace admin console",
		Version:  fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:    globalFlags(),
		Metadata: make(map[string]any),
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			statusCommand(),
			watchCommand(),
			categoriesCommand(),
			bookingsCommand(),
			providersCommand(),
			servicesCommand(),
			reviewsCommand(),
			documentsCommand(),
		},
		After: closeConsole,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log debug detail to stderr",
		},
	}
}

// getConsole builds the console on first use and reuses it for the rest of
// the invocation. Construction is deferred to command actions so --help and
// --version never require configuration.
func getConsole(c *cli.Context) (*console.App, error) {
	if app, ok := c.App.Metadata[consoleKey].(*console.App); ok {
		return app, nil
	}

	var cfg console.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	logOpts := []logger.Option{logger.WithOutput(c.App.ErrWriter)}
	if c.Bool("verbose") {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelDebug))
	}

	app, err := console.New(c.Context, console.WithLogger(console.NewLogger(cfg, logOpts...)))
	if err != nil {
		return nil, err
	}
	c.App.Metadata[consoleKey] = app
	return app, nil
}

// closeConsole releases console resources after the command finishes. Runs
// even when the action returned an error.
func closeConsole(c *cli.Context) error {
	if app, ok := c.App.Metadata[consoleKey].(*console.App); ok {
		return app.Close()
	}
	return nil
}

// requireSession waits out the background initialization and returns the
// authenticated session. An unauthenticated resolution surfaces the
// initialization failure when there is one, so a flaky network reads
// differently from a missing login.
func requireSession(c *cli.Context, app *console.App) (session.Session, error) {
	decision, err := app.Guard().Wait(c.Context)
	if err != nil {
		return session.Session{}, err
	}
	if decision != routeguard.DecisionAllow {
		if initErr := app.Init().Await(); initErr != nil {
			return session.Session{}, fmt.Errorf("could not validate stored credential: %w", initErr)
		}
		return session.Session{}, errNotSignedIn
	}
	return app.Manager().Current(), nil
}

// parseIDArg reads a positional UUID argument.
func parseIDArg(c *cli.Context, name string) (uuid.UUID, error) {
	raw := c.Args().First()
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%s required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// confirm asks for a y/N answer unless --force was given.
func confirm(c *cli.Context, prompt string) bool {
	if c.Bool("force") {
		return true
	}

	fmt.Fprintf(c.App.Writer, "%s [y/N]: ", prompt)
	var answer string
	_, _ = fmt.Fscanln(c.App.Reader, &answer)
	return answer == "y" || answer == "Y"
}

// readLine reads one trimmed line, for prompted input and --password-stdin.
// It consumes byte by byte and never buffers past the newline, so consecutive
// prompts can keep reading from the same reader.
func readLine(r io.Reader) (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				break
			}
			return "", err
		}
	}
	return strings.TrimSpace(string(line)), nil
}

// listFlags returns the pagination and free-form filter flags every list
// subcommand shares, plus any command-specific extras.
func listFlags(extra ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:  "page",
			Value: 1,
			Usage: "Page number",
		},
		&cli.IntFlag{
			Name:  "per-page",
			Value: 20,
			Usage: "Items per page",
		},
		&cli.StringSliceFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "Additional filter as KEY=VALUE",
		},
	}
	return append(flags, extra...)
}

// listParams assembles query parameters from the shared list flags plus any
// filters the command derived from its own flags.
func listParams(c *cli.Context, fixed map[string]string) marketplace.ListParams {
	params := marketplace.ListParams{
		Page:    c.Int("page"),
		PerPage: c.Int("per-page"),
	}

	filters := make(map[string]string, len(fixed))
	for k, v := range fixed {
		filters[k] = v
	}
	for _, f := range c.StringSlice("filter") {
		if k, v, ok := strings.Cut(f, "="); ok && k != "" {
			filters[k] = v
		}
	}
	if len(filters) > 0 {
		params.Filters = filters
	}
	return params
}
