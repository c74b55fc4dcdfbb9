package main

import (
	"errors"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/Mbii55/servio-admin-sub000/integration/marketplace"
)

// categoriesCommand returns the categories subcommand group.
func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:    "categories",
		Aliases: []string{"cat"},
		Usage:   "Manage service categories",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List categories",
				Flags: listFlags(
					&cli.StringFlag{
						Name:  "active",
						Usage: "Filter by active state (true|false)",
					},
				),
				Action: categoriesList,
			},
			{
				Name:      "get",
				Usage:     "Show one category",
				ArgsUsage: "CATEGORY_ID",
				Action:    categoriesGet,
			},
			{
				Name:  "create",
				Usage: "Create a category",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "slug",
						Usage: "URL slug (derived from the name when empty)",
					},
					&cli.StringFlag{
						Name:  "icon",
						Usage: "Icon identifier",
					},
					&cli.IntFlag{
						Name:  "position",
						Usage: "Sort position",
					},
					&cli.BoolFlag{
						Name:  "hidden",
						Usage: "Create the category inactive",
					},
				},
				Action: categoriesCreate,
			},
			{
				Name:      "update",
				Usage:     "Update category fields",
				ArgsUsage: "CATEGORY_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Display name"},
					&cli.StringFlag{Name: "slug", Usage: "URL slug"},
					&cli.StringFlag{Name: "icon", Usage: "Icon identifier"},
					&cli.IntFlag{Name: "position", Usage: "Sort position"},
					&cli.BoolFlag{Name: "active", Usage: "Active state"},
				},
				Action: categoriesUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a category",
				ArgsUsage: "CATEGORY_ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Skip confirmation"},
				},
				Action: categoriesDelete,
			},
		},
	}
}

func categoriesList(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	fixed := map[string]string{}
	if c.IsSet("active") {
		fixed["active"] = c.String("active")
	}

	page, err := app.Marketplace().Categories.List(c.Context, listParams(c, fixed))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, cat := range page.Items {
		rows = append(rows, []string{
			cat.ID.String(),
			cat.Name,
			cat.Slug,
			formatBool(cat.Active),
			strconv.Itoa(cat.Position),
		})
	}

	p := newPrinter(c)
	if err := p.Table(page, []string{"ID", "NAME", "SLUG", "ACTIVE", "POSITION"}, rows); err != nil {
		return err
	}
	p.Total("categories", page.Total)
	return nil
}

func categoriesGet(c *cli.Context) error {
	id, err := parseIDArg(c, "category ID")
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

	cat, err := app.Marketplace().Categories.Get(c.Context, id)
	if err != nil {
		return err
	}

	return newPrinter(c).Details(cat, [][2]string{
		{"ID", cat.ID.String()},
		{"Name", cat.Name},
		{"Slug", cat.Slug},
		{"Icon", orDash(cat.Icon)},
		{"Active", formatBool(cat.Active)},
		{"Position", strconv.Itoa(cat.Position)},
		{"Created", formatTime(cat.CreatedAt)},
		{"Updated", formatTime(cat.UpdatedAt)},
	})
}

func categoriesCreate(c *cli.Context) error {
	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	input := marketplace.CategoryInput{
		Name: c.String("name"),
		Slug: c.String("slug"),
		Icon: c.String("icon"),
	}
	if c.IsSet("position") {
		pos := c.Int("position")
		input.Position = &pos
	}
	if c.Bool("hidden") {
		inactive := false
		input.Active = &inactive
	}

	cat, err := app.Marketplace().Categories.Create(c.Context, input)
	if err != nil {
		return err
	}

	p := newPrinter(c)
	p.Line("Category %q created (%s)", cat.Name, cat.ID)
	if p.json {
		return p.JSON(cat)
	}
	return nil
}

func categoriesUpdate(c *cli.Context) error {
	id, err := parseIDArg(c, "category ID")
	if err != nil {
		return err
	}

	var input marketplace.CategoryInput
	if c.IsSet("name") {
		input.Name = c.String("name")
	}
	if c.IsSet("slug") {
		input.Slug = c.String("slug")
	}
	if c.IsSet("icon") {
		input.Icon = c.String("icon")
	}
	if c.IsSet("position") {
		pos := c.Int("position")
		input.Position = &pos
	}
	if c.IsSet("active") {
		active := c.Bool("active")
		input.Active = &active
	}
	if input == (marketplace.CategoryInput{}) {
		return errors.New("nothing to update: set at least one field flag")
	}

	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	cat, err := app.Marketplace().Categories.Update(c.Context, id, input)
	if err != nil {
		return err
	}

	p := newPrinter(c)
	p.Line("Category %q updated", cat.Name)
	if p.json {
		return p.JSON(cat)
	}
	return nil
}

func categoriesDelete(c *cli.Context) error {
	id, err := parseIDArg(c, "category ID")
	if err != nil {
		return err
	}

	if !confirm(c, "Delete category "+id.String()+"?") {
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

	if err := app.Marketplace().Categories.Delete(c.Context, id); err != nil {
		return err
	}

	newPrinter(c).Line("Category %s deleted.", id)
	return nil
}
