// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package container describes the container runtimes that can run the
// conversion image. It builds command lines for display only; nothing
// here executes a process.
package container

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/selfie-convert/pkg/types"
)

const (
	binDocker = "docker"
	binPodman = "podman"

	// DefaultRuntime is used when no runtime is configured.
	DefaultRuntime = binDocker

	// continuation ends every command line but the last.
	continuation = " \\"
	// flagIndent prefixes each flag line of a run command.
	flagIndent = "    "
)

// ErrUnknownRuntime is returned by Lookup for unsupported runtime names.
var ErrUnknownRuntime = errors.New("unknown container runtime")

// Runtime renders container invocations for a specific runtime binary.
type Runtime interface {
	// Name returns the binary name ("docker" or "podman").
	Name() string

	// DisplayName returns the product name used in prose ("Docker" or "Podman").
	DisplayName() string

	// RunCommand returns the display lines of a one-shot container run that
	// binds the current directory to mount and passes flags to image.
	RunCommand(image, mount string, flags []types.Flag) types.Command
}

// runtime implements Runtime. Docker and Podman accept the same run
// syntax; they differ only in binary and display name.
type runtime struct {
	bin     string
	display string
}

func (r *runtime) Name() string        { return r.bin }
func (r *runtime) DisplayName() string { return r.display }

func (r *runtime) RunCommand(image, mount string, flags []types.Flag) types.Command {
	head := fmt.Sprintf("%s run --rm -v $PWD:%s %s", r.bin, mount, image)
	lines := make(types.Command, 0, len(flags)+1)
	lines = append(lines, head)
	for _, f := range flags {
		lines = append(lines, flagIndent+f.Arg())
	}
	for i := 0; i < len(lines)-1; i++ {
		lines[i] += continuation
	}
	return lines
}

func newDockerRuntime() *runtime {
	return &runtime{bin: binDocker, display: "Docker"}
}

func newPodmanRuntime() *runtime {
	return &runtime{bin: binPodman, display: "Podman"}
}

// Names lists the supported runtime names, default first.
func Names() []string {
	return []string{binDocker, binPodman}
}

// Lookup returns the runtime with the given name. An empty name selects
// the default runtime. Matching is case-insensitive.
func Lookup(name string) (Runtime, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", binDocker:
		return newDockerRuntime(), nil
	case binPodman:
		return newPodmanRuntime(), nil
	}
	return nil, fmt.Errorf("%w %q: expected one of %s",
		ErrUnknownRuntime, name, strings.Join(Names(), ", "))
}
