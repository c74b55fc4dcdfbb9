package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Mbii55/servio-admin-sub000/integration/marketplace"
)

// bookingsCommand returns the bookings subcommand group.
func bookingsCommand() *cli.Command {
	return &cli.Command{
		Name:    "bookings",
		Aliases: []string{"bk"},
		Usage:   "Inspect and manage bookings",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List bookings",
				Flags: listFlags(
					&cli.StringFlag{
						Name:  "status",
						Usage: "Filter by status (pending|confirmed|in_progress|completed|cancelled)",
					},
					&cli.StringFlag{
						Name:  "provider",
						Usage: "Filter by provider ID",
					},
					&cli.StringFlag{
						Name:  "customer",
						Usage: "Filter by customer ID",
					},
				),
				Action: bookingsList,
			},
			{
				Name:      "get",
				Usage:     "Show one booking",
				ArgsUsage: "BOOKING_ID",
				Action:    bookingsGet,
			},
			{
				Name:      "set-status",
				Usage:     "Move a booking to a new status",
				ArgsUsage: "BOOKING_ID STATUS",
				Action:    bookingsSetStatus,
			},
		},
	}
}

func bookingsList(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	fixed := map[string]string{}
	if v := c.String("status"); v != "" {
		fixed["status"] = v
	}
	if v := c.String("provider"); v != "" {
		fixed["provider_id"] = v
	}
	if v := c.String("customer"); v != "" {
		fixed["customer_id"] = v
	}

	page, err := app.Marketplace().Bookings.List(c.Context, listParams(c, fixed))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, b := range page.Items {
		rows = append(rows, []string{
			b.ID.String(),
			b.Reference,
			string(b.Status),
			formatTime(b.ScheduledAt),
			formatMoney(b.PriceCents, b.Currency),
		})
	}

	p := newPrinter(c)
	if err := p.Table(page, []string{"ID", "REFERENCE", "STATUS", "SCHEDULED", "PRICE"}, rows); err != nil {
		return err
	}
	p.Total("bookings", page.Total)
	return nil
}

func bookingsGet(c *cli.Context) error {
	id, err := parseIDArg(c, "booking ID")
	if err != nil {
		return err
	}

	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	b, err := app.Marketplace().Bookings.Get(c.Context, id)
	if err != nil {
		return err
	}

	return newPrinter(c).Details(b, [][2]string{
		{"ID", b.ID.String()},
		{"Reference", b.Reference},
		{"Status", string(b.Status)},
		{"Customer", b.CustomerID.String()},
		{"Provider", b.ProviderID.String()},
		{"Service", b.ServiceID.String()},
		{"Scheduled", formatTime(b.ScheduledAt)},
		{"Price", formatMoney(b.PriceCents, b.Currency)},
		{"Created", formatTime(b.CreatedAt)},
	})
}

func bookingsSetStatus(c *cli.Context) error {
	id, err := parseIDArg(c, "booking ID")
	if err != nil {
		return err
	}
	status := c.Args().Get(1)
	if status == "" {
		return errors.New("status required (pending|confirmed|in_progress|completed|cancelled)")
	}

	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	b, err := app.Marketplace().Bookings.UpdateStatus(c.Context, id, marketplace.BookingStatus(status))
	if errors.Is(err, marketplace.ErrInvalidStatus) {
		return fmt.Errorf("unknown status %q (pending|confirmed|in_progress|completed|cancelled)", status)
	}
	if err != nil {
		return err
	}

	p := newPrinter(c)
	p.Line("Booking %s is now %s.", b.Reference, b.Status)
	if p.json {
		return p.JSON(b)
	}
	return nil
}
