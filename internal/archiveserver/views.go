package archiveserver

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"codequiz/internal/challenge"
)

const pageStyle = `body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
ul.options { list-style: none; padding: 0; }
ul.options li { padding: 0.4rem 0.6rem; border: 1px solid #ccc; margin: 0.3rem 0; border-radius: 4px; }
.difficulty { text-transform: uppercase; color: #666; font-size: 0.8rem; }
.explanation { margin-top: 1rem; padding: 0.6rem; background: #f4f4f4; border-radius: 4px; }`

// indexPage renders the archive listing.
func indexPage(challenges []challenge.Challenge) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeHead(w, "Challenge Archive"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<h1>Challenge Archive</h1>\n<ul>\n"); err != nil {
			return err
		}
		for _, c := range challenges {
			line := fmt.Sprintf(
				"<li><span class=\"difficulty\">%s</span> <a href=\"/challenge/%s\">%s</a></li>\n",
				templ.EscapeString(c.Difficulty),
				templ.EscapeString(c.ID),
				templ.EscapeString(c.Title),
			)
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>\n</body></html>\n")
		return err
	})
}

// challengePage renders one challenge with its options in the neutral,
// unanswered presentation.
func challengePage(c challenge.Challenge) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeHead(w, c.Title); err != nil {
			return err
		}
		header := fmt.Sprintf(
			"<p class=\"difficulty\">%s</p>\n<h1>%s</h1>\n<ul class=\"options\">\n",
			templ.EscapeString(c.Difficulty),
			templ.EscapeString(c.Title),
		)
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}
		for i, option := range c.Options {
			line := fmt.Sprintf("<li>%d. %s</li>\n", i+1, templ.EscapeString(option))
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
		footer := fmt.Sprintf(
			"</ul>\n<div class=\"explanation\">%s</div>\n</body></html>\n",
			templ.EscapeString(c.Explanation),
		)
		_, err := io.WriteString(w, footer)
		return err
	})
}

// writeHead writes the shared HTML shell opening.
func writeHead(w io.Writer, title string) error {
	head := fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>%s</title>
    <style>%s</style>
  </head>
  <body>
`, templ.EscapeString(title), pageStyle)
	_, err := io.WriteString(w, head)
	return err
}
