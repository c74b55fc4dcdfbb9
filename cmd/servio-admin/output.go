package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"
)

// printer renders command results as aligned tables on the app writer, or as
// indented JSON when --output json is set.
type printer struct {
	out  io.Writer
	json bool
}

func newPrinter(c *cli.Context) *printer {
	return &printer{
		out:  c.App.Writer,
		json: strings.EqualFold(c.String("output"), "json"),
	}
}

// JSON writes data as indented JSON regardless of the configured format.
func (p *printer) JSON(data any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Table renders rows under upper-case headers. In JSON mode the raw data is
// printed instead so scripts get the full payload, not the table projection.
func (p *printer) Table(data any, headers []string, rows [][]string) error {
	if p.json {
		return p.JSON(data)
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Details renders a single resource as aligned field/value pairs.
func (p *printer) Details(data any, pairs [][2]string) error {
	if p.json {
		return p.JSON(data)
	}

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, kv := range pairs {
		fmt.Fprintf(tw, "%s:\t%s\n", kv[0], kv[1])
	}
	return tw.Flush()
}

// Line prints a formatted status line. Suppressed in JSON mode, where output
// must stay machine-readable.
func (p *printer) Line(format string, args ...any) {
	if p.json {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Total prints the list footer in table mode.
func (p *printer) Total(noun string, total int) {
	p.Line("\nTotal: %d %s", total, noun)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatTime(*t)
}

func formatMoney(cents int64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", float64(cents)/100)
	}
	return fmt.Sprintf("%.2f %s", float64(cents)/100, currency)
}

func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
