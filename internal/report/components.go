package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#222}
table{border-collapse:collapse;font-size:.9rem}
th,td{border:1px solid #ccc;padding:.25rem .5rem;text-align:left;vertical-align:top}
thead tr:first-child th{background:#eef}
thead tr.reference th{background:#f7f7f7;font-weight:normal;font-style:italic}
tr.degraded td{background:#fff3e0}
dl{display:grid;grid-template-columns:max-content auto;gap:.2rem 1rem}
dt{font-weight:bold}
.diagnostics li{font-family:monospace;white-space:pre-wrap}`

// Layout renders the HTML document shell around content.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!doctype html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>%s</title><style>%s</style></head><body>",
			templ.EscapeString(title), pageStyle); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>", templ.EscapeString(title)); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// Body renders the run facts, the table and the diagnostics list.
func Body(data Data) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Facts(data).Render(ctx, w); err != nil {
			return err
		}
		if err := GradingTable(data).Render(ctx, w); err != nil {
			return err
		}
		return Diagnostics(data.Diagnostics).Render(ctx, w)
	})
}

// Facts renders the run id, timestamp and stats as a definition list.
func Facts(data Data) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		stats := make([]Stat, 0, len(data.Stats)+2)
		if data.RunID != "" {
			stats = append(stats, Stat{Label: "Run", Value: data.RunID})
		}
		if !data.GeneratedAt.IsZero() {
			stats = append(stats, Stat{Label: "Generated", Value: data.GeneratedAt.UTC().Format("2006-01-02 15:04:05Z")})
		}
		stats = append(stats, data.Stats...)
		if len(stats) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, "<dl>"); err != nil {
			return err
		}
		for _, stat := range stats {
			if _, err := fmt.Fprintf(w, "<dt>%s</dt><dd>%s</dd>", templ.EscapeString(stat.Label), templ.EscapeString(stat.Value)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</dl>")
		return err
	})
}

// GradingTable renders the header and reference rows as the table head and
// every learner row in the body. Degraded rows carry the degraded class.
func GradingTable(data Data) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		rows := data.Table.Rows
		if len(rows) == 0 {
			return nil
		}
		degraded := map[int]bool{}
		for _, entry := range data.Table.Degraded {
			degraded[entry.Row] = true
		}
		if _, err := io.WriteString(w, "<table><thead>"); err != nil {
			return err
		}
		for i, row := range rows {
			switch {
			case i == 1:
				if err := writeRow(w, `<tr class="reference">`, "th", row); err != nil {
					return err
				}
				if _, err := io.WriteString(w, "</thead><tbody>"); err != nil {
					return err
				}
				continue
			case i == 0:
				if err := writeRow(w, "<tr>", "th", row); err != nil {
					return err
				}
				continue
			case degraded[i]:
				if err := writeRow(w, `<tr class="degraded" data-row="`+strconv.Itoa(i)+`">`, "td", row); err != nil {
					return err
				}
			default:
				if err := writeRow(w, "<tr>", "td", row); err != nil {
					return err
				}
			}
		}
		if len(rows) == 1 {
			if _, err := io.WriteString(w, "</thead><tbody>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody></table>")
		return err
	})
}

// Diagnostics renders warnings collected during the run.
func Diagnostics(lines []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(lines) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<h2>Diagnostics</h2><ul class="diagnostics">`); err != nil {
			return err
		}
		for _, line := range lines {
			if _, err := fmt.Fprintf(w, "<li>%s</li>", templ.EscapeString(line)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}

func writeRow(w io.Writer, open, cell string, values []string) error {
	if _, err := io.WriteString(w, open); err != nil {
		return err
	}
	for _, value := range values {
		if _, err := fmt.Fprintf(w, "<%s>%s</%s>", cell, templ.EscapeString(value), cell); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</tr>")
	return err
}
