// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pdiddy/selfie-convert/pkg/types"
)

const prettyWrap = 100

// markdownRenderer prints the guide as Markdown with fenced shell blocks.
// With pretty set, the Markdown is rendered for a terminal by glamour.
type markdownRenderer struct {
	pretty bool
}

func (r *markdownRenderer) Render(w io.Writer, doc types.Document) error {
	var b strings.Builder
	writeMarkdown(&lineWriter{w: &b}, doc)
	out := b.String()

	if r.pretty {
		tr, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(prettyWrap),
		)
		if err != nil {
			return fmt.Errorf("creating terminal renderer: %w", err)
		}
		if out, err = tr.Render(out); err != nil {
			return fmt.Errorf("rendering markdown: %w", err)
		}
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("writing markdown output: %w", err)
	}
	return nil
}

// writeMarkdown cannot fail: lw wraps a strings.Builder.
func writeMarkdown(lw *lineWriter, doc types.Document) {
	lw.line("# " + doc.Title)
	lw.line("")
	lw.line(doc.Summary)
	lw.line("")
	for _, h := range doc.Highlights {
		lw.line("- " + h)
	}
	lw.line("")

	lw.line("## Model")
	lw.line("")
	lw.linef("- **Source:** <%s>", doc.Model.SourceURL)
	lw.linef("- **Input:** `%s` %s", doc.Model.Input, doc.Model.Input.Description)
	lw.linef("- **Output:** `%s` %s", doc.Model.Output, doc.Model.Output.Description)
	lw.line("")
	lw.line("| Class | Label |")
	lw.line("|------:|-------|")
	for _, c := range doc.Model.Classes {
		lw.linef("| %d | %s |", c.Index, c.Label())
	}
	lw.line("")
	lw.line(doc.PostProcessing)
	lw.line("")

	lw.line("## Conversion methods")
	for _, m := range doc.Methods {
		lw.line("")
		lw.linef("### %d. %s", m.Number, m.Title)
		if len(m.Command) > 0 {
			lw.line("")
			fence(lw, m.Command)
		}
		if len(m.Notes) > 0 {
			lw.line("")
			lw.lines(m.Notes, "")
		}
	}
	lw.line("")

	lw.line("## Conversion instructions")
	lw.line("")
	lw.line(strings.Join(doc.Intro, " "))

	for _, s := range doc.Steps {
		lw.line("")
		lw.linef("### Step %d: %s", s.Number, s.Title)
		for i, c := range s.Commands {
			lw.line("")
			if i > 0 {
				lw.line("or")
				lw.line("")
			}
			fence(lw, c)
		}
	}

	lw.line("")
	lw.line("### Alternative: " + doc.Alternative.Title)
	lw.line("")
	lw.linef("Check <%s>", doc.Alternative.URL)
}

func fence(lw *lineWriter, c types.Command) {
	lw.line("```sh")
	lw.lines(c, "")
	lw.line("```")
}
