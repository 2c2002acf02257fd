// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runnercfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleConfig = `
default = "jest"

[runner.jest]
args = "--colors --reporters 'jest-junit'"
install = "npm install --no-save jest"

[runner.vitest]
command = "vitest"
args = "run"

[runner.gotest]
command = "go"
args = "test ./..."

[runner.gotest.env]
CGO_ENABLED = "0"
`

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, configName)
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir())

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Default != "jest" {
		t.Errorf("Default = %q, want %q", cfg.Default, "jest")
	}
	want := []string{"gotest", "jest", "vitest"}
	if diff := cmp.Diff(want, cfg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if env := cfg.Runners["gotest"].Env["CGO_ENABLED"]; env != "0" {
		t.Errorf("gotest env CGO_ENABLED = %q, want %q", env, "0")
	}
}

func TestLoad_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configName)
	if err := os.WriteFile(path, []byte("[runner.jest\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestLoadFromDir_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	loc, err := LoadFromDir(nested)
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}
	if loc == nil {
		t.Fatal("LoadFromDir() = nil, want config found in ancestor dir")
	}
	if loc.Dir != root {
		t.Errorf("Dir = %q, want %q", loc.Dir, root)
	}
}

func TestLoadFromDir_Missing(t *testing.T) {
	loc, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}
	if loc != nil {
		t.Fatalf("LoadFromDir() = %+v, want nil for missing config", loc)
	}
}

func TestResolve(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name        string
		lookup      string
		wantCommand string
		wantOK      bool
	}{
		{name: "named runner", lookup: "vitest", wantCommand: "vitest", wantOK: true},
		{name: "empty name selects default", lookup: "", wantCommand: "jest", wantOK: true},
		{name: "command defaults to key", lookup: "jest", wantCommand: "jest", wantOK: true},
		{name: "unknown runner", lookup: "mocha", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := cfg.Resolve(tt.lookup)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.lookup, ok, tt.wantOK)
			}
			if ok && r.Command != tt.wantCommand {
				t.Errorf("Command = %q, want %q", r.Command, tt.wantCommand)
			}
		})
	}

	var nilCfg *Config
	if _, ok := nilCfg.Resolve("jest"); ok {
		t.Error("Resolve() on nil config = true, want false")
	}
}

func TestArgTokens(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	jest, _ := cfg.Resolve("jest")
	got, err := jest.ArgTokens()
	if err != nil {
		t.Fatalf("ArgTokens() error = %v", err)
	}
	// Quoted tokens stay whole.
	want := []string{"--colors", "--reporters", "jest-junit"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ArgTokens() mismatch (-want +got):\n%s", diff)
	}

	install, err := jest.InstallTokens()
	if err != nil {
		t.Fatalf("InstallTokens() error = %v", err)
	}
	if diff := cmp.Diff([]string{"npm", "install", "--no-save", "jest"}, install); diff != "" {
		t.Errorf("InstallTokens() mismatch (-want +got):\n%s", diff)
	}

	empty := Runner{}
	if tokens, err := empty.ArgTokens(); err != nil || tokens != nil {
		t.Errorf("ArgTokens() on empty = %v, %v, want nil, nil", tokens, err)
	}

	bad := Runner{Args: `unterminated "quote`}
	if _, err := bad.ArgTokens(); err == nil {
		t.Error("ArgTokens() error = nil, want quoting error")
	}
}
