// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/selfie-convert/pkg/types"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(w io.Writer, doc types.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing json output: %w", err)
	}
	return nil
}

type yamlRenderer struct{}

func (r *yamlRenderer) Render(w io.Writer, doc types.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("writing yaml output: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing yaml output: %w", err)
	}
	return nil
}
