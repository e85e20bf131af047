// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strconv"
	"strings"
)

// Tensor describes one model input or output.
type Tensor struct {
	// Shape lists the tensor dimensions, batch first (e.g. [1, 256, 256, 3]).
	Shape []int `json:"shape" yaml:"shape"`

	// Description explains the layout, dtype, and value range.
	Description string `json:"description" yaml:"description"`
}

// String formats the shape as "[1, 256, 256, 3]".
func (t Tensor) String() string {
	dims := make([]string, len(t.Shape))
	for i, d := range t.Shape {
		dims[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(dims, ", ") + "]"
}

// ClassLabel is one channel of the segmentation output.
type ClassLabel struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`

	// Note is an optional qualifier shown in parentheses (e.g. "accessories").
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Label returns the display label, "Others (accessories)" when a note is set.
func (c ClassLabel) Label() string {
	if c.Note == "" {
		return c.Name
	}
	return c.Name + " (" + c.Note + ")"
}

// ModelCard holds the published facts about the segmentation model.
type ModelCard struct {
	Name      string       `json:"name" yaml:"name"`
	SourceURL string       `json:"source_url" yaml:"source_url"`
	Input     Tensor       `json:"input" yaml:"input"`
	Output    Tensor       `json:"output" yaml:"output"`
	Classes   []ClassLabel `json:"classes" yaml:"classes"`
}

// Method is one of the known ways to convert the model.
type Method struct {
	Title string `json:"title" yaml:"title"`

	// Container marks the method whose body is the containerized
	// conversion command from Instructions.Conversion.
	Container bool `json:"container,omitempty" yaml:"container,omitempty"`

	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Flag is a single command-line option passed to the conversion image.
// An empty Value renders as a bare switch.
type Flag struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Arg returns the flag as it appears on a command line.
func (f Flag) Arg() string {
	if f.Value == "" {
		return "--" + f.Name
	}
	return "--" + f.Name + " " + f.Value
}

// Download locates the TFLite file to fetch.
type Download struct {
	URL  string `json:"url" yaml:"url"`
	File string `json:"file" yaml:"file"`
}

// Conversion describes the container invocation that performs the conversion.
type Conversion struct {
	Image string `json:"image" yaml:"image"`

	// Mount is the in-container path the working directory is bound to.
	Mount string `json:"mount" yaml:"mount"`

	Flags []Flag `json:"flags" yaml:"flags"`
}

// Copy moves the converted artifact into the application's model directory.
type Copy struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Alternative points at a source of pre-converted models.
type Alternative struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Instructions holds the inputs for the numbered conversion steps.
type Instructions struct {
	Intro       []string    `json:"intro" yaml:"intro"`
	Download    Download    `json:"download" yaml:"download"`
	Conversion  Conversion  `json:"conversion" yaml:"conversion"`
	Copy        Copy        `json:"copy" yaml:"copy"`
	Alternative Alternative `json:"alternative" yaml:"alternative"`
}

// Guide is the complete instruction content before it is bound to a
// container runtime.
type Guide struct {
	Title      string   `json:"title" yaml:"title"`
	Summary    string   `json:"summary" yaml:"summary"`
	Highlights []string `json:"highlights" yaml:"highlights"`

	Model ModelCard `json:"model" yaml:"model"`

	// PostProcessing explains how the six-class output becomes a binary mask.
	PostProcessing string `json:"post_processing" yaml:"post_processing"`

	Methods      []Method     `json:"methods" yaml:"methods"`
	Instructions Instructions `json:"instructions" yaml:"instructions"`
}
