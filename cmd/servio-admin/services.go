package main

import (
	"strconv"

	"github.com/urfave/cli/v2"
)

// servicesCommand returns the services subcommand group.
func servicesCommand() *cli.Command {
	return &cli.Command{
		Name:  "services",
		Usage: "Manage service listings",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List service listings",
				Flags: listFlags(
					&cli.StringFlag{
						Name:  "provider",
						Usage: "Filter by provider ID",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Filter by category ID",
					},
				),
				Action: servicesList,
			},
			{
				Name:      "get",
				Usage:     "Show one service listing",
				ArgsUsage: "SERVICE_ID",
				Action:    servicesGet,
			},
			{
				Name:      "delete",
				Usage:     "Take a service listing off the marketplace",
				ArgsUsage: "SERVICE_ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Skip confirmation"},
				},
				Action: servicesDelete,
			},
		},
	}
}

func servicesList(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	fixed := map[string]string{}
	if v := c.String("provider"); v != "" {
		fixed["provider_id"] = v
	}
	if v := c.String("category"); v != "" {
		fixed["category_id"] = v
	}

	page, err := app.Marketplace().Services.List(c.Context, listParams(c, fixed))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, svc := range page.Items {
		rows = append(rows, []string{
			svc.ID.String(),
			svc.Title,
			formatMoney(svc.PriceCents, svc.Currency),
			strconv.Itoa(svc.DurationMin) + "m",
			formatBool(svc.Active),
		})
	}

	p := newPrinter(c)
	if err := p.Table(page, []string{"ID", "TITLE", "PRICE", "DURATION", "ACTIVE"}, rows); err != nil {
		return err
	}
	p.Total("services", page.Total)
	return nil
}

func servicesGet(c *cli.Context) error {
	id, err := parseIDArg(c, "service ID")
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

	svc, err := app.Marketplace().Services.Get(c.Context, id)
	if err != nil {
		return err
	}

	return newPrinter(c).Details(svc, [][2]string{
		{"ID", svc.ID.String()},
		{"Title", svc.Title},
		{"Provider", svc.ProviderID.String()},
		{"Category", svc.CategoryID.String()},
		{"Price", formatMoney(svc.PriceCents, svc.Currency)},
		{"Duration", strconv.Itoa(svc.DurationMin) + " minutes"},
		{"Active", formatBool(svc.Active)},
		{"Created", formatTime(svc.CreatedAt)},
	})
}

func servicesDelete(c *cli.Context) error {
	id, err := parseIDArg(c, "service ID")
	if err != nil {
		return err
	}

	if !confirm(c, "Remove service "+id.String()+" from the marketplace?") {
		newPrinter(c).Line("Cancelled.")
		return nil
	}

	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	if err := app.Marketplace().Services.Delete(c.Context, id); err != nil {
		return err
	}

	newPrinter(c).Line("Service %s removed. Existing bookings are unaffected.", id)
	return nil
}
