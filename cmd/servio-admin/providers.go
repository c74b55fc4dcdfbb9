package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// providersCommand returns the providers subcommand group.
func providersCommand() *cli.Command {
	return &cli.Command{
		Name:    "providers",
		Aliases: []string{"prov"},
		Usage:   "Manage provider accounts and verification",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List providers",
				Flags: listFlags(
					&cli.StringFlag{
						Name:  "verified",
						Usage: "Filter by verification state (true|false)",
					},
					&cli.StringFlag{
						Name:  "search",
						Usage: "Search by business name or email",
					},
				),
				Action: providersList,
			},
			{
				Name:      "get",
				Usage:     "Show one provider",
				ArgsUsage: "PROVIDER_ID",
				Action:    providersGet,
			},
			{
				Name:      "verify",
				Usage:     "Mark a provider as verified",
				ArgsUsage: "PROVIDER_ID",
				Action:    providersVerify(true),
			},
			{
				Name:      "unverify",
				Usage:     "Revoke a provider's verified badge",
				ArgsUsage: "PROVIDER_ID",
				Action:    providersVerify(false),
			},
		},
	}
}

func providersList(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	fixed := map[string]string{}
	if c.IsSet("verified") {
		fixed["verified"] = c.String("verified")
	}
	if v := c.String("search"); v != "" {
		fixed["search"] = v
	}

	page, err := app.Marketplace().Providers.List(c.Context, listParams(c, fixed))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, prov := range page.Items {
		rows = append(rows, []string{
			prov.ID.String(),
			prov.BusinessName,
			prov.Email,
			formatBool(prov.Verified),
			fmt.Sprintf("%.1f", prov.Rating),
		})
	}

	p := newPrinter(c)
	if err := p.Table(page, []string{"ID", "BUSINESS", "EMAIL", "VERIFIED", "RATING"}, rows); err != nil {
		return err
	}
	p.Total("providers", page.Total)
	return nil
}

func providersGet(c *cli.Context) error {
	id, err := parseIDArg(c, "provider ID")
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

	prov, err := app.Marketplace().Providers.Get(c.Context, id)
	if err != nil {
		return err
	}

	name := prov.FirstName
	if prov.LastName != "" {
		name += " " + prov.LastName
	}

	return newPrinter(c).Details(prov, [][2]string{
		{"ID", prov.ID.String()},
		{"Business", prov.BusinessName},
		{"Contact", orDash(name)},
		{"Email", prov.Email},
		{"Phone", orDash(prov.Phone)},
		{"Verified", formatBool(prov.Verified)},
		{"Rating", fmt.Sprintf("%.1f", prov.Rating)},
		{"Joined", formatTime(prov.CreatedAt)},
	})
}

// providersVerify returns the action for the verify and unverify commands.
func providersVerify(verified bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		id, err := parseIDArg(c, "provider ID")
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

		prov, err := app.Marketplace().Providers.SetVerification(c.Context, id, verified)
		if err != nil {
			return err
		}

		p := newPrinter(c)
		if verified {
			p.Line("Provider %q is now verified.", prov.BusinessName)
		} else {
			p.Line("Provider %q is no longer verified.", prov.BusinessName)
		}
		if p.json {
			return p.JSON(prov)
		}
		return nil
	}
}
