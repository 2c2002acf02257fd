// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runnercfg loads jog.toml, the per-project file that names the
// test runners jog can wrap and the default arguments each one gets.
package runnercfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/kballard/go-shellquote"
)

const configName = "jog.toml"

// Config is the parsed jog.toml.
type Config struct {
	// Default names the runner used when the command line does not pick
	// one.
	Default string            `toml:"default,omitempty"`
	Runners map[string]Runner `toml:"runner"`
}

// Runner defines one wrapped test runner.
type Runner struct {
	// Command is the executable to invoke. Defaults to the runner's
	// config key.
	Command string `toml:"command,omitempty"`
	// Args holds default arguments as one shell-quoted string, prepended
	// to whatever the command line passes through.
	Args string `toml:"args,omitempty"`
	// Install is an optional shell-quoted command run before the first
	// invocation when the runner executable is not on PATH.
	Install string            `toml:"install,omitempty"`
	Env     map[string]string `toml:"env,omitempty"`
}

// Location is a loaded config plus where it was found.
type Location struct {
	Path   string
	Dir    string
	Config *Config
}

// Load parses the config file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromCwd walks from the working directory toward the filesystem root
// looking for jog.toml. It returns nil, nil when no config exists.
func LoadFromCwd() (*Location, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFromDir(cwd)
}

// LoadFromDir walks from startDir toward the root looking for jog.toml.
// It returns nil, nil when no config exists.
func LoadFromDir(startDir string) (*Location, error) {
	path, err := findConfigPath(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Location{Path: path, Dir: filepath.Dir(path), Config: cfg}, nil
}

func findConfigPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, configName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if err != nil && !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Resolve looks up a runner by name. An empty name selects the configured
// default. The returned runner always has Command filled in.
func (c *Config) Resolve(name string) (Runner, bool) {
	if c == nil {
		return Runner{}, false
	}
	if name == "" {
		name = c.Default
	}
	if name == "" {
		return Runner{}, false
	}
	r, ok := c.Runners[name]
	if !ok {
		return Runner{}, false
	}
	if r.Command == "" {
		r.Command = name
	}
	return r, true
}

// Names returns the configured runner names, sorted.
func (c *Config) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Runners))
	for name := range c.Runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ArgTokens splits the default argument string into argv tokens, honoring
// shell quoting.
func (r Runner) ArgTokens() ([]string, error) {
	return splitTokens(r.Args)
}

// InstallTokens splits the install command into argv tokens.
func (r Runner) InstallTokens() ([]string, error) {
	return splitTokens(r.Install)
}

func splitTokens(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	tokens, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("failed to split %q: %w", s, err)
	}
	return tokens, nil
}
