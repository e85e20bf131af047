// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes a resolved guide in one of the supported output
// formats. The text format is the default and the stable contract; the
// others carry the same content.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/selfie-convert/pkg/types"
)

// ErrUnknownFormat is returned by New for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes a Document to w.
type Renderer interface {
	Render(w io.Writer, doc types.Document) error
}

// New returns the renderer for format. pretty only affects markdown,
// where it renders the output for a terminal.
func New(format types.Format, pretty bool) (Renderer, error) {
	switch format {
	case "", types.FormatText:
		return &textRenderer{}, nil
	case types.FormatMarkdown:
		return &markdownRenderer{pretty: pretty}, nil
	case types.FormatJSON:
		return &jsonRenderer{}, nil
	case types.FormatYAML:
		return &yamlRenderer{}, nil
	}
	names := make([]string, len(types.Formats))
	for i, f := range types.Formats {
		names[i] = string(f)
	}
	return nil, fmt.Errorf("%w %q: expected one of %s", ErrUnknownFormat, format, strings.Join(names, ", "))
}

// lineWriter writes newline-terminated lines and keeps the first error;
// later writes become no-ops.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s+"\n")
}

func (lw *lineWriter) linef(format string, args ...any) {
	lw.line(fmt.Sprintf(format, args...))
}

func (lw *lineWriter) lines(ss []string, indent string) {
	for _, s := range ss {
		lw.line(indent + s)
	}
}
