// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/selfie-convert/internal/container"
	"github.com/pdiddy/selfie-convert/pkg/types"
)

func TestDefault(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "[1, 256, 256, 3]", g.Model.Input.String())
	assert.Equal(t, "[1, 256, 256, 6]", g.Model.Output.String())

	var labels []string
	for _, c := range g.Model.Classes {
		labels = append(labels, c.Name)
	}
	assert.Equal(t, []string{"Background", "Hair", "Body-skin", "Face-skin", "Clothes", "Others"}, labels)

	var flags []string
	for _, f := range g.Instructions.Conversion.Flags {
		flags = append(flags, f.Name)
	}
	assert.Equal(t, []string{"model_path", "flatc_path", "schema_path", "model_output_path", "output_onnx"}, flags)

	assert.Equal(t, "pinto0309/tflite2tensorflow:latest", g.Instructions.Conversion.Image)
	assert.Equal(t, "../data/models/selfie_multiclass_256x256.onnx", g.Instructions.Copy.To)
	assert.Equal(t, "https://github.com/PINTO0309/PINTO_model_zoo", g.Instructions.Alternative.URL)
	assert.True(t, strings.HasPrefix(g.PostProcessing, "For background removal, we use argmax"), g.PostProcessing)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:   "embedded content parses",
			mutate: func(s string) string { return s },
		},
		{
			name:    "unknown key rejected",
			mutate:  func(s string) string { return s + "\nextra_section: true\n" },
			wantErr: "extra_section",
		},
		{
			name: "missing image rejected",
			mutate: func(s string) string {
				return strings.Replace(s, "image: pinto0309/tflite2tensorflow:latest", "image: \"\"", 1)
			},
			wantErr: "instructions.conversion.image is required",
		},
		{
			name: "out of order class index rejected",
			mutate: func(s string) string {
				return strings.Replace(s, "{index: 1, name: Hair}", "{index: 7, name: Hair}", 1)
			},
			wantErr: "model.classes[1] has index 7",
		},
		{
			name:    "empty document rejected",
			mutate:  func(string) string { return "" },
			wantErr: "decoding guide",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(string(embedded))))
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)
	require.NoError(t, Validate(g))

	err = Validate(types.Guide{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	for _, field := range []string{"title", "model.source_url", "instructions.download.url", "model.classes", "instructions.conversion.flags"} {
		assert.Contains(t, err.Error(), field)
	}

	g.Instructions.Conversion.Flags = append(g.Instructions.Conversion.Flags, types.Flag{Value: "orphan"})
	err = Validate(g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "flags[5].name is required")
}

func TestResolve(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)
	rt, err := container.Lookup("docker")
	require.NoError(t, err)

	doc := Resolve(g, rt)

	require.Len(t, doc.Steps, 3)
	for i, s := range doc.Steps {
		assert.Equal(t, i+1, s.Number)
	}

	download := doc.Steps[0]
	require.Len(t, download.Commands, 2)
	assert.Equal(t, types.Command{"wget " + g.Instructions.Download.URL}, download.Commands[0])
	assert.Equal(t,
		types.Command{"curl -L -o selfie_multiclass_256x256.tflite '" + g.Instructions.Download.URL + "'"},
		download.Commands[1])

	convert := doc.Steps[1]
	assert.Equal(t, "Convert using Docker (requires Docker installed)", convert.Title)
	require.Len(t, convert.Commands, 1)
	assert.Equal(t, types.Command{
		"docker run --rm -v $PWD:/workspace pinto0309/tflite2tensorflow:latest \\",
		"    --model_path /workspace/selfie_multiclass_256x256.tflite \\",
		"    --flatc_path /usr/local/bin/flatc \\",
		"    --schema_path /usr/local/bin/schema.fbs \\",
		"    --model_output_path /workspace/selfie_multiclass_saved_model \\",
		"    --output_onnx",
	}, convert.Commands[0])

	assert.Equal(t,
		[]types.Command{{"cp selfie_multiclass_saved_model/model_float32.onnx ../data/models/selfie_multiclass_256x256.onnx"}},
		doc.Steps[2].Commands)

	require.Len(t, doc.Methods, 3)
	assert.Equal(t, convert.Commands[0], doc.Methods[0].Command)
	assert.Nil(t, doc.Methods[1].Command)
	assert.Nil(t, doc.Methods[2].Command)
	assert.Equal(t, 3, doc.Methods[2].Number)
}

func TestResolve_Podman(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)
	docker, err := container.Lookup("docker")
	require.NoError(t, err)
	podman, err := container.Lookup("podman")
	require.NoError(t, err)

	d := Resolve(g, docker)
	p := Resolve(g, podman)

	assert.Equal(t, "Convert using Podman (requires Podman installed)", p.Steps[1].Title)
	dRun, pRun := d.Steps[1].Commands[0], p.Steps[1].Commands[0]
	require.Equal(t, len(dRun), len(pRun))
	assert.Equal(t, strings.Replace(dRun[0], "docker", "podman", 1), pRun[0])
	assert.Equal(t, dRun[1:], pRun[1:])
	assert.Equal(t, d.Steps[0], p.Steps[0])
	assert.Equal(t, d.Steps[2], p.Steps[2])
}
