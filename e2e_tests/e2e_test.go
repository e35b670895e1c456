//go:build integration

package e2etest

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmm-dev/tmm/interpreter"
)

const (
	binary      = "../bin/tmm"
	testdataDir = "testdata"
)

type testcase struct {
	args      []string
	isPassing bool
	// stderr must contain errContains when the command fails.
	errContains string
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command(binary, args...)

	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.String(), errOut.String(), err
}

func runTest(t *testing.T, command string, cases map[string]testcase) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, errOut, err := runCLI(t, append([]string{command}, tc.args...)...)
			if tc.isPassing {
				require.NoError(t, err, "errorOutput: %s", errOut)
				assert.NotEmpty(t, out)
				return
			}
			require.Error(t, err, "output: %s", out)
			assert.Contains(t, errOut, tc.errContains)
		})
	}
}

func TestParse(t *testing.T) {
	cases := map[string]testcase{
		"vectors": {
			args:      []string{"-format", "json", filepath.Join(testdataDir, "vectors.tmm")},
			isPassing: true,
		},
		"project": {
			args:      []string{"-profile", filepath.Join(testdataDir, "blink", "tmm.yaml")},
			isPassing: true,
		},
		"tokens": {
			args:      []string{"-tokens", filepath.Join(testdataDir, "bad_arity.tmm")},
			isPassing: true,
		},
		"arity": {
			args:        []string{filepath.Join(testdataDir, "bad_arity.tmm")},
			errContains: "bad_arity.tmm:3: grammar error: expected ',' between arguments",
		},
		"unterminated-string": {
			args:        []string{filepath.Join(testdataDir, "bad_string.tmm")},
			errContains: "lexical error: unexpected end-of-file found while parsing string",
		},
		"missing-file": {
			args:        []string{filepath.Join(testdataDir, "nope.tmm")},
			errContains: "file error: file not found",
		},
	}
	runTest(t, "parse", cases)
}

func TestParseTree(t *testing.T) {
	out, errOut, err := runCLI(t, "parse", "-format", "json", filepath.Join(testdataDir, "vectors.tmm"))
	require.NoError(t, err, "errorOutput: %s", errOut)

	var tree struct {
		Type     string `json:"type"`
		Children []struct {
			Type string `json:"type"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "Program", tree.Type)

	var types []string
	for _, c := range tree.Children {
		types = append(types, c.Type)
	}
	assert.Equal(t, []string{
		"SectionStatement",
		"InstructionStatement",
		"InstructionStatement",
		"InstructionStatement",
		"InstructionStatement",
		"SectionStatement",
		"LabelStatement",
		"InstructionStatement",
		"InstructionStatement",
	}, types)
}

func TestRun(t *testing.T) {
	out, errOut, err := runCLI(t, "run", "-profile", filepath.Join(testdataDir, "blink", "tmm.yaml"))
	require.NoError(t, err, "errorOutput: %s", errOut)

	var summary interpreter.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.Len(t, summary.Sections, 2)
	assert.Equal(t, "PROGRAM", summary.Sections[0].Name)
	assert.Equal(t, 7, summary.Sections[0].Instructions)
	assert.Equal(t, 3, summary.Labels)
	assert.Equal(t, 1, summary.Functions)
	assert.Equal(t, 1, summary.Calls)

	out, errOut, err = runCLI(t, "run", "-format", "json", filepath.Join(testdataDir, "vectors.tmm"))
	require.NoError(t, err, "errorOutput: %s", errOut)
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.Len(t, summary.Sections, 2)
	assert.Equal(t, "INT0", summary.Sections[0].Name)
	assert.Equal(t, 4, summary.Sections[0].Instructions)
}
