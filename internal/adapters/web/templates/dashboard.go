package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/javaBin/talks-site/internal/adapters/api"
)

// GenerateURL is the htmx endpoint of the generate button
const GenerateURL = "/admin/dashboard/generate"

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Dashboard renders the admin page with the status of the latest site generation
func Dashboard(status api.GenerationStatus) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Site generator</title>
<script src="%s"></script>
</head>
<body>
<main>
<h1>Site generator</h1>
<button hx-post="%s" hx-target="#status" hx-swap="outerHTML" hx-disabled-elt="this">Generate site</button>
`, htmxScript, GenerateURL); err != nil {
			return err
		}

		if err := StatusPanel(status).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

// StatusPanel renders the status of a site generation. It is swapped in
// place after each generation.
func StatusPanel(status api.GenerationStatus) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<section id=\"status\" class=\"status-%s\">\n<h2>Last generation: %s</h2>\n",
			templ.EscapeString(status.Status), templ.EscapeString(status.Status)); err != nil {
			return err
		}

		if !status.FinishedAt.IsZero() {
			if _, err := fmt.Fprintf(w, `<dl>
<dt>Finished</dt><dd>%s</dd>
<dt>Duration</dt><dd>%s</dd>
<dt>Sessions</dt><dd>%d</dd>
<dt>Speakers</dt><dd>%d</dd>
</dl>
`, status.FinishedAt.Format(time.RFC3339), status.Duration.Round(time.Millisecond), status.Sessions, status.Speakers); err != nil {
				return err
			}
		}

		if status.Message != "" {
			if _, err := fmt.Fprintf(w, "<p class=\"message\">%s</p>\n", templ.EscapeString(status.Message)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</section>\n")
		return err
	})
}
