package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboard = template.Must(template.New("dashboard.html").ParseFS(templateFS, "templates/dashboard.html"))

// Render writes the dashboard HTML for p.
func Render(w io.Writer, p Page) error {
	if err := dashboard.Execute(w, p); err != nil {
		return errors.Wrap(err, "render dashboard")
	}
	return nil
}

// RenderText writes p as aligned plain text.
func RenderText(w io.Writer, p Page) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, p.Title)
	fmt.Fprintln(tw)
	for _, c := range p.Cards {
		fmt.Fprintf(tw, "%s\t%s\n", c.Label, c.Value)
	}
	if p.Error != "" {
		fmt.Fprintf(tw, "\nError: %s\n", p.Error)
	}

	for _, t := range p.Tables {
		fmt.Fprintf(tw, "\n%s\n", t.Title)
		fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
		if t.Empty() {
			fmt.Fprintln(tw, Placeholder)
			continue
		}
		for _, r := range t.Rows {
			fmt.Fprintln(tw, strings.Join(r, "\t"))
		}
	}

	return tw.Flush()
}
