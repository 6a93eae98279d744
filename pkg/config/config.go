// Package config resolves the settings of a compilation: the DEBUG and
// PROFILE flags and where the diagnostic trace goes.
//
// Sources are applied in order, later ones winning: defaults, a zc.yaml
// file, ZC_* environment variables, then command-line flags (applied by the
// driver).
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"zc/pkg/utils"
)

// Flags is a set of compiler switches.
type Flags uint8

const (
	FlagDebug   Flags = 1 << iota // print every pipeline stage to the trace
	FlagProfile                   // print per-stage timings to the trace
)

// Has reports whether every flag in x is set.
func (f Flags) Has(x Flags) bool { return f&x == x }

// Set turns x on or off.
func (f *Flags) Set(x Flags, on bool) {
	if on {
		*f |= x
	} else {
		*f &^= x
	}
}

func (f Flags) String() string {
	var names []string
	if f.Has(FlagDebug) {
		names = append(names, "DEBUG")
	}
	if f.Has(FlagProfile) {
		names = append(names, "PROFILE")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// FileName is the settings file Discover looks for.
const FileName = "zc.yaml"

// Environment variables read by FromEnv.
const (
	EnvDebug   = "ZC_DEBUG"
	EnvProfile = "ZC_PROFILE"
	EnvTrace   = "ZC_TRACE"
)

// Settings is the resolved configuration of one compilation.
type Settings struct {
	Flags Flags
	// TracePath is where the trace is written. Empty means stderr.
	TracePath string
	// Source is the settings file that was loaded, if any.
	Source string
}

// settingsFile is the on-disk shape of zc.yaml. Pointers tell "absent"
// apart from "false".
type settingsFile struct {
	Debug   *bool  `yaml:"debug"`
	Profile *bool  `yaml:"profile"`
	Trace   string `yaml:"trace"`
}

// Load reads a settings file on top of the defaults. A relative trace path
// is resolved against the file's directory.
func Load(path string) (Settings, error) {
	var s Settings
	if err := s.LoadFile(path); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadFile applies the settings file at path to s.
func (s *Settings) LoadFile(path string) error {
	if path == "" {
		return fmt.Errorf("config: empty path")
	}
	absPath, dir, err := utils.GetPathInfo(path)
	if err != nil {
		return fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw settingsFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file changes nothing.
			s.Source = absPath
			return nil
		}
		return fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	if raw.Debug != nil {
		s.Flags.Set(FlagDebug, *raw.Debug)
	}
	if raw.Profile != nil {
		s.Flags.Set(FlagProfile, *raw.Profile)
	}
	if raw.Trace != "" {
		s.TracePath = raw.Trace
		if !filepath.IsAbs(raw.Trace) {
			s.TracePath = filepath.Join(dir, raw.Trace)
		}
	}
	s.Source = absPath
	return nil
}

// FromEnv applies the ZC_* environment variables that are set. The
// environment is re-read on every call.
func (s *Settings) FromEnv() {
	env.Load()
	if env.Has(EnvDebug) {
		s.Flags.Set(FlagDebug, env.Bool(EnvDebug))
	}
	if env.Has(EnvProfile) {
		s.Flags.Set(FlagProfile, env.Bool(EnvProfile))
	}
	if trace := env.Str(EnvTrace); trace != "" {
		s.TracePath = trace
	}
}

// Discover looks for zc.yaml in the directory of sourcePath and then in each
// parent directory. It returns "" when there is none.
func Discover(sourcePath string) (string, error) {
	_, dir, err := utils.GetPathInfo(sourcePath)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", sourcePath, err)
	}
	return utils.FindUp(dir, FileName), nil
}

// Resolve loads the settings for compiling sourcePath: the explicit file if
// one is given, otherwise a discovered zc.yaml, then the environment.
func Resolve(sourcePath, explicit string) (Settings, error) {
	var s Settings
	path := explicit
	if path == "" && sourcePath != "" {
		found, err := Discover(sourcePath)
		if err != nil {
			return Settings{}, err
		}
		path = found
	}
	if path != "" {
		if err := s.LoadFile(path); err != nil {
			return Settings{}, err
		}
	}
	s.FromEnv()
	return s, nil
}
