package types

// Format selects how the guide is written to stdout.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported output format, default first.
var Formats = []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML}

// Settings holds the CLI settings after flags, environment, and the
// optional config file have been merged.
type Settings struct {
	// Format selects the output format (default text).
	Format Format `json:"format" yaml:"format" mapstructure:"format"`

	// Runtime names the container runtime shown in the commands: docker or podman.
	Runtime string `json:"runtime" yaml:"runtime" mapstructure:"runtime"`

	// Pretty renders markdown output for a terminal. Ignored for other formats.
	Pretty bool `json:"pretty" yaml:"pretty" mapstructure:"pretty"`

	// LogLevel is the minimum level written to stderr (default warn).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log-level"`
}
