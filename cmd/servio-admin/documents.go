package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/Mbii55/servio-admin-sub000/integration/marketplace"
)

// documentsCommand returns the documents subcommand group for identity
// verification review.
func documentsCommand() *cli.Command {
	return &cli.Command{
		Name:    "documents",
		Aliases: []string{"docs"},
		Usage:   "Review provider verification documents",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List verification documents",
				Flags: listFlags(
					&cli.StringFlag{
						Name:  "status",
						Usage: "Filter by review status (pending|approved|rejected)",
					},
					&cli.StringFlag{
						Name:  "provider",
						Usage: "Filter by provider ID",
					},
				),
				Action: documentsList,
			},
			{
				Name:      "get",
				Usage:     "Show one document",
				ArgsUsage: "DOCUMENT_ID",
				Action:    documentsGet,
			},
			{
				Name:      "approve",
				Usage:     "Approve a pending document",
				ArgsUsage: "DOCUMENT_ID",
				Action:    documentsApprove,
			},
			{
				Name:      "reject",
				Usage:     "Reject a pending document",
				ArgsUsage: "DOCUMENT_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "reason",
						Aliases: []string{"r"},
						Usage:   "Reason shown to the provider",
					},
				},
				Action: documentsReject,
			},
		},
	}
}

func documentsList(c *cli.Context) error {
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

	page, err := app.Marketplace().Documents.List(c.Context, listParams(c, fixed))
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(page.Items))
	for _, doc := range page.Items {
		rows = append(rows, []string{
			doc.ID.String(),
			doc.Type,
			string(doc.Status),
			doc.FileName,
			formatTime(doc.SubmittedAt),
		})
	}

	p := newPrinter(c)
	if err := p.Table(page, []string{"ID", "TYPE", "STATUS", "FILE", "SUBMITTED"}, rows); err != nil {
		return err
	}
	p.Total("documents", page.Total)
	return nil
}

func documentsGet(c *cli.Context) error {
	id, err := parseIDArg(c, "document ID")
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

	doc, err := app.Marketplace().Documents.Get(c.Context, id)
	if err != nil {
		return err
	}

	return newPrinter(c).Details(doc, [][2]string{
		{"ID", doc.ID.String()},
		{"Provider", doc.ProviderID.String()},
		{"Type", doc.Type},
		{"Status", string(doc.Status)},
		{"File", doc.FileName},
		{"Submitted", formatTime(doc.SubmittedAt)},
		{"Reviewed", formatTimePtr(doc.ReviewedAt)},
		{"Reject reason", orDash(doc.RejectReason)},
	})
}

func documentsApprove(c *cli.Context) error {
	id, err := parseIDArg(c, "document ID")
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

	doc, err := app.Marketplace().Documents.Approve(c.Context, id)
	if err != nil {
		return err
	}

	p := newPrinter(c)
	p.Line("Document %s approved.", doc.ID)
	if p.json {
		return p.JSON(doc)
	}
	return nil
}

func documentsReject(c *cli.Context) error {
	id, err := parseIDArg(c, "document ID")
	if err != nil {
		return err
	}

	reason := c.String("reason")
	if reason == "" {
		return errors.New("a rejection reason is required (--reason)")
	}

	app, err := getConsole(c)
	if err != nil {
		return err
	}
	if _, err := requireSession(c, app); err != nil {
		return err
	}

	doc, err := app.Marketplace().Documents.Reject(c.Context, id, reason)
	if errors.Is(err, marketplace.ErrReasonRequired) {
		return errors.New("a rejection reason is required (--reason)")
	}
	if err != nil {
		return err
	}

	p := newPrinter(c)
	p.Line("Document %s rejected.", doc.ID)
	if p.json {
		return p.JSON(doc)
	}
	return nil
}
