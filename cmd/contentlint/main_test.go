package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifest = "name: neuro\nkind: neuro-entry\ncategories: [movement]\n"

const oneWay = `id: parkinsons
kind: neuro-entry
name: Parkinson's disease
category: movement
levels:
  1:
    summary: Slow movement.
    explanation: Dopamine loss.
cross_references:
  - target_id: essential-tremor
    target_type: neuro-entry
    relationship: sibling
version: 1
status: published
---
id: essential-tremor
kind: neuro-entry
name: Essential tremor
category: movement
levels:
  1:
    summary: Action tremor.
    explanation: Cerebellar circuits.
version: 1
status: published
`

func contentDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	}
	return dir
}

func TestRun(t *testing.T) {
	t.Parallel()

	oneWayDir := contentDir(t, map[string]string{
		"neuro/collection.yaml": manifest,
		"neuro/movement.yaml":   oneWay,
	})
	brokenDir := contentDir(t, map[string]string{
		"neuro/collection.yaml": manifest,
		"neuro/movement.yaml":   oneWay,
		"neuro/stroke.yaml":     "id: stroke\nkind: neuro-entry\nname: Stroke\ncategory: vascular\nversion: 1\nstatus: published\n",
	})

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  []string
	}{
		{
			name:     "seed library",
			args:     nil,
			wantCode: 0,
			wantOut:  []string{"ok embedded seed library: 2 collection(s), 10 record(s), 13 edge(s), 0 lint finding(s)"},
		},
		{
			name:     "seed library strict",
			args:     []string{"--strict"},
			wantCode: 0,
		},
		{
			name:     "lint findings warn",
			args:     []string{"--dir", oneWayDir},
			wantCode: 0,
			wantOut: []string{
				"lint: neuro/parkinsons -> neuro/essential-tremor (sibling)",
				"1 lint finding(s)",
			},
		},
		{
			name:     "lint findings strict",
			args:     []string{"--dir", oneWayDir, "--strict"},
			wantCode: 1,
		},
		{
			name:     "invalid content lists every problem",
			args:     []string{"--dir", brokenDir},
			wantCode: 1,
			wantOut:  []string{"FAIL " + brokenDir, "stroke", "category is not defined", "must define level 1"},
		},
		{
			name:     "missing directory",
			args:     []string{"--dir", filepath.Join(t.TempDir(), "absent")},
			wantCode: 2,
		},
		{
			name:     "unknown flag",
			args:     []string{"--fix"},
			wantCode: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			code := run(context.Background(), tc.args, &stdout, &stderr)
			assert.Equal(t, tc.wantCode, code, "stdout: %s\nstderr: %s", stdout.String(), stderr.String())
			for _, want := range tc.wantOut {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}
