// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/selfie-convert/internal/container"
	"github.com/pdiddy/selfie-convert/internal/guide"
	"github.com/pdiddy/selfie-convert/internal/logging"
	"github.com/pdiddy/selfie-convert/internal/render"
	"github.com/pdiddy/selfie-convert/pkg/types"
)

// runGuide resolves the embedded guide and writes it to stdout. All
// settings are validated before the first byte is written.
func runGuide(cmd *cobra.Command, v *viper.Viper, args []string) error {
	var s types.Settings
	if err := v.Unmarshal(&s); err != nil {
		return fmt.Errorf("decoding settings: %w", err)
	}

	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}
	log := logging.New(cmd.ErrOrStderr(), level)
	if f := v.ConfigFileUsed(); f != "" {
		log.Info("using config file", "path", f)
	}
	if len(args) > 0 {
		log.Debug("ignoring arguments", "args", args)
	}

	rt, err := container.Lookup(s.Runtime)
	if err != nil {
		return err
	}
	r, err := render.New(s.Format, s.Pretty)
	if err != nil {
		return err
	}
	g, err := guide.Default()
	if err != nil {
		return fmt.Errorf("loading guide: %w", err)
	}

	log.Debug("rendering guide", "format", s.Format, "runtime", rt.Name(), "pretty", s.Pretty)
	return r.Render(cmd.OutOrStdout(), guide.Resolve(g, rt))
}
