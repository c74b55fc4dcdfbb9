package main

import (
	"strconv"

	"github.com/urfave/cli/v2"
)

// reviewsCommand returns the reviews subcommand group.
func reviewsCommand() *cli.Command {
	return &cli.Command{
		Name:  "reviews",
		Usage: "Moderate customer reviews",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List reviews",
				Flags: listFlags(
					&cli.StringFlag{
						Name:  "provider",
						Usage: "Filter by provider ID",
					},
					&cli.StringFlag{
						Name:  "rating",
						Usage: "Filter by star rating (1-5)",
					},
				),
				Action: reviewsList,
			},
			{
				Name:      "delete",
				Usage:     "Remove an abusive or fraudulent review",
				ArgsUsage: "REVIEW_ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Skip confirmation"},
				},
				Action: reviewsDelete,
			},
		},
	}
}

func reviewsList(c *cli.Context) error {
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
	if v := c.String("rating"); v != "" {
		fixed["rating"] = v
	}

	page, err := app.Marketplace().Reviews.List(c.Context, listParams(c, fixed))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, rev := range page.Items {
		comment := rev.Comment
		if len(comment) > 60 {
			comment = comment[:57] + "..."
		}
		rows = append(rows, []string{
			rev.ID.String(),
			strconv.Itoa(rev.Rating),
			comment,
			formatTime(rev.CreatedAt),
		})
	}

	p := newPrinter(c)
	if err := p.Table(page, []string{"ID", "RATING", "COMMENT", "CREATED"}, rows); err != nil {
		return err
	}
	p.Total("reviews", page.Total)
	return nil
}

func reviewsDelete(c *cli.Context) error {
	id, err := parseIDArg(c, "review ID")
	if err != nil {
		return err
	}

	if !confirm(c, "Delete review "+id.String()+"?") {
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

	if err := app.Marketplace().Reviews.Delete(c.Context, id); err != nil {
		return err
	}

	newPrinter(c).Line("Review %s deleted.", id)
	return nil
}
