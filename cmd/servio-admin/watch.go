package main

import (
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Mbii55/servio-admin-sub000/core/session"
)

// watchCommand returns the watch command. It holds the process open with the
// refresh scheduler running, so the stored credential keeps rotating for as
// long as the console is attended.
func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Hold the session open and renew the credential on schedule",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "How often to report session state",
				Value:   30 * time.Second,
			},
			&cli.DurationFlag{
				Name:  "refresh-interval",
				Usage: "Credential renewal interval (overrides SERVIO_REFRESH_INTERVAL)",
			},
		},
		Action: watchAction,
	}
}

func watchAction(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	var schedOpts []session.SchedulerOption
	if d := c.Duration("refresh-interval"); d > 0 {
		schedOpts = append(schedOpts, session.WithRefreshInterval(d))
	}
	scheduler, err := app.NewScheduler(schedOpts...)
	if err != nil {
		return err
	}

	p := newPrinter(c)
	p.Line("Watching session; press Ctrl-C to stop.")

	g, ctx := errgroup.WithContext(c.Context)
	g.Go(scheduler.Run(ctx))
	g.Go(func() error {
		ticker := time.NewTicker(c.Duration("interval"))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				sess := app.Manager().Current()
				account := "-"
				if sess.User != nil {
					account = sess.User.Email
				}
				p.Line("%s  state=%s account=%s", time.Now().Format(time.TimeOnly), sess.Status, account)
			}
		}
	})
	return g.Wait()
}
