// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/selfie-convert/pkg/types"
)

const (
	ruleWidth     = 80
	stepUnderline = "-------"
	methodIndent  = "   "
	classIndent   = "    "
)

// textRenderer prints the plain-text instructions: the model description,
// a ruled CONVERSION INSTRUCTIONS header, the numbered steps, and the
// alternative source as the final line.
type textRenderer struct{}

func (r *textRenderer) Render(w io.Writer, doc types.Document) error {
	lw := &lineWriter{w: w}
	rule := strings.Repeat("=", ruleWidth)

	lw.line(doc.Title)
	lw.line("")
	lw.line(doc.Summary)
	for _, h := range doc.Highlights {
		lw.line("- " + h)
	}
	lw.line("")
	lw.line("Model source: " + doc.Model.SourceURL)
	lw.line("")
	lw.linef("Input: %s - %s", doc.Model.Input, doc.Model.Input.Description)
	lw.linef("Output: %s - %s:", doc.Model.Output, doc.Model.Output.Description)
	for _, c := range doc.Model.Classes {
		lw.linef("%s- Class %d: %s", classIndent, c.Index, c.Label())
	}
	lw.line("")
	lw.line(doc.PostProcessing)
	lw.line("")

	lw.line("Conversion methods:")
	for i, m := range doc.Methods {
		if i > 0 {
			lw.line("")
		}
		lw.linef("%d. %s:", m.Number, m.Title)
		lw.lines(m.Command, methodIndent)
		lw.lines(m.Notes, methodIndent)
	}
	lw.line("")

	lw.line(rule)
	lw.line("CONVERSION INSTRUCTIONS")
	lw.line(rule)
	lw.line("")
	lw.lines(doc.Intro, "")
	lw.line("")

	for _, s := range doc.Steps {
		lw.linef("Step %d: %s", s.Number, s.Title)
		lw.line(stepUnderline)
		for i, c := range s.Commands {
			if i > 0 {
				lw.line("OR")
			}
			lw.lines(c, "")
		}
		lw.line("")
	}

	lw.line("Alternative: " + doc.Alternative.Title)
	lw.line(stepUnderline)
	lw.line("Check: " + doc.Alternative.URL)

	if lw.err != nil {
		return fmt.Errorf("writing text output: %w", lw.err)
	}
	return nil
}
