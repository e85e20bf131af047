// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package guide holds the conversion instructions for the MediaPipe Selfie
// Multiclass Segmentation model. The content is compiled into the binary
// from guide.yaml and resolved against a container runtime before rendering.
package guide

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/selfie-convert/pkg/types"
)

//go:embed guide.yaml
var embedded []byte

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid guide")

// Default decodes and validates the embedded guide.
func Default() (types.Guide, error) {
	return Parse(embedded)
}

// Parse decodes a guide from YAML. Unknown keys are rejected so that a
// typo in the content fails loudly instead of dropping a section.
func Parse(data []byte) (types.Guide, error) {
	var g types.Guide
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil {
		return types.Guide{}, fmt.Errorf("decoding guide: %w", err)
	}
	if err := Validate(g); err != nil {
		return types.Guide{}, err
	}
	return g, nil
}

// Validate checks the structural invariants the renderers rely on: the
// required URLs and paths are present, class indices run 0..n-1 in order,
// and the conversion command has at least one flag.
func Validate(g types.Guide) error {
	var problems []error
	require := func(value, field string) {
		if value == "" {
			problems = append(problems, fmt.Errorf("%s is required", field))
		}
	}

	require(g.Title, "title")
	require(g.Model.SourceURL, "model.source_url")
	require(g.Instructions.Download.URL, "instructions.download.url")
	require(g.Instructions.Download.File, "instructions.download.file")
	require(g.Instructions.Conversion.Image, "instructions.conversion.image")
	require(g.Instructions.Conversion.Mount, "instructions.conversion.mount")
	require(g.Instructions.Copy.From, "instructions.copy.from")
	require(g.Instructions.Copy.To, "instructions.copy.to")
	require(g.Instructions.Alternative.URL, "instructions.alternative.url")

	if len(g.Model.Input.Shape) == 0 {
		problems = append(problems, errors.New("model.input.shape is required"))
	}
	if len(g.Model.Output.Shape) == 0 {
		problems = append(problems, errors.New("model.output.shape is required"))
	}
	if len(g.Model.Classes) == 0 {
		problems = append(problems, errors.New("model.classes is required"))
	}
	for i, c := range g.Model.Classes {
		if c.Index != i {
			problems = append(problems, fmt.Errorf("model.classes[%d] has index %d", i, c.Index))
		}
		if c.Name == "" {
			problems = append(problems, fmt.Errorf("model.classes[%d].name is required", i))
		}
	}

	if len(g.Instructions.Conversion.Flags) == 0 {
		problems = append(problems, errors.New("instructions.conversion.flags is required"))
	}
	for i, f := range g.Instructions.Conversion.Flags {
		if f.Name == "" {
			problems = append(problems, fmt.Errorf("instructions.conversion.flags[%d].name is required", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(problems...))
	}
	return nil
}
