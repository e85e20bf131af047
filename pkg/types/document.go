// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Command is one shell command, split into its display lines. Every line
// except the last ends with a " \" continuation.
type Command []string

// ResolvedMethod is a conversion method with its command filled in.
type ResolvedMethod struct {
	Number  int      `json:"number" yaml:"number"`
	Title   string   `json:"title" yaml:"title"`
	Command Command  `json:"command,omitempty" yaml:"command,omitempty"`
	Notes   []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Step is one numbered instruction. Commands holds equivalent
// alternatives; the user runs any one of them.
type Step struct {
	Number   int       `json:"number" yaml:"number"`
	Title    string    `json:"title" yaml:"title"`
	Commands []Command `json:"commands" yaml:"commands"`
}

// Document is a Guide resolved for one container runtime. Renderers work
// from a Document only.
type Document struct {
	Title          string           `json:"title" yaml:"title"`
	Summary        string           `json:"summary" yaml:"summary"`
	Highlights     []string         `json:"highlights" yaml:"highlights"`
	Model          ModelCard        `json:"model" yaml:"model"`
	PostProcessing string           `json:"post_processing" yaml:"post_processing"`
	Methods        []ResolvedMethod `json:"methods" yaml:"methods"`
	Intro          []string         `json:"intro" yaml:"intro"`
	Steps          []Step           `json:"steps" yaml:"steps"`
	Alternative    Alternative      `json:"alternative" yaml:"alternative"`
}
