// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"fmt"

	"github.com/pdiddy/selfie-convert/internal/container"
	"github.com/pdiddy/selfie-convert/pkg/types"
)

const (
	titleDownload = "Download the TFLite model"
	titleConvert  = "Convert using %[1]s (requires %[1]s installed)"
	titleCopy     = "Copy the ONNX model to the models directory"
)

// Resolve binds the guide to rt, producing the numbered steps and the
// literal commands the renderers print.
func Resolve(g types.Guide, rt container.Runtime) types.Document {
	ins := g.Instructions
	run := rt.RunCommand(ins.Conversion.Image, ins.Conversion.Mount, ins.Conversion.Flags)

	var methods []types.ResolvedMethod
	for i, m := range g.Methods {
		rm := types.ResolvedMethod{
			Number: i + 1,
			Title:  m.Title,
			Notes:  m.Notes,
		}
		if m.Container {
			rm.Command = run
		}
		methods = append(methods, rm)
	}

	steps := []types.Step{
		{
			Title: titleDownload,
			Commands: []types.Command{
				{"wget " + ins.Download.URL},
				{fmt.Sprintf("curl -L -o %s '%s'", ins.Download.File, ins.Download.URL)},
			},
		},
		{
			Title:    fmt.Sprintf(titleConvert, rt.DisplayName()),
			Commands: []types.Command{run},
		},
		{
			Title:    titleCopy,
			Commands: []types.Command{{"cp " + ins.Copy.From + " " + ins.Copy.To}},
		},
	}
	for i := range steps {
		steps[i].Number = i + 1
	}

	return types.Document{
		Title:          g.Title,
		Summary:        g.Summary,
		Highlights:     g.Highlights,
		Model:          g.Model,
		PostProcessing: g.PostProcessing,
		Methods:        methods,
		Intro:          ins.Intro,
		Steps:          steps,
		Alternative:    ins.Alternative,
	}
}
