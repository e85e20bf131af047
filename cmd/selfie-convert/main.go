// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the selfie-convert CLI, which prints
// the manual steps for converting the MediaPipe Selfie Multiclass
// Segmentation model from TFLite to ONNX.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/selfie-convert/internal/container"
	"github.com/pdiddy/selfie-convert/internal/logging"
	"github.com/pdiddy/selfie-convert/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// ignoredBool is a bool-typed flag value that accepts any input and
// always reads back false. It stands in for cobra's -h/--help so that
// asking for help prints the guide like any other ignored argument.
type ignoredBool struct{}

var _ pflag.Value = ignoredBool{}

func (ignoredBool) String() string   { return "false" }
func (ignoredBool) Set(string) error { return nil }
func (ignoredBool) Type() string     { return "bool" }
func (ignoredBool) IsBoolFlag() bool { return true }

// newRootCmd builds the root command. Each call gets its own viper
// instance so settings never leak between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "selfie-convert",
		Short: "Print instructions for converting the MediaPipe selfie multiclass model to ONNX",
		Long: `selfie-convert prints the steps for converting the MediaPipe Selfie Multiclass
Segmentation model (selfie_multiclass_256x256) from TFLite to ONNX with the
pinto0309/tflite2tensorflow container image.

Nothing is downloaded, converted, or executed: the commands are printed for
you to run. Positional arguments and unrecognized flags are ignored.`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuide(cmd, v, args)
		},
	}
	cmd.SetVersionTemplate("selfie-convert {{.Version}}\n")

	f := cmd.Flags()
	f.String("config", "", "settings file (YAML); never searched for implicitly")
	f.String("format", string(types.FormatText), "output format: text, markdown, json, or yaml")
	f.String("runtime", container.DefaultRuntime, "container runtime shown in commands: "+strings.Join(container.Names(), " or "))
	f.Bool("pretty", false, "render markdown output for a terminal")
	f.String("log-level", "warn", "stderr log level: debug, info, warn, or error")

	// Declared here so cobra does not add its own: --version has no -v
	// shorthand, and -h/--help are accepted and ignored.
	f.Bool("version", false, "print the version and exit")
	help := f.VarPF(ignoredBool{}, "help", "h", "ignored")
	help.NoOptDefVal = "true"
	help.Hidden = true

	return cmd
}

// initConfig layers settings: flags, then the --config file, then flag
// defaults. The environment is never consulted, so a plain invocation
// prints the same guide everywhere.
func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.New(os.Stderr, logging.DefaultLevel).Error("selfie-convert failed", "error", err)
		os.Exit(1)
	}
}
