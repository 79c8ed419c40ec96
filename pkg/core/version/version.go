// ============================================================================
// quickx - Utility Library
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its CLI
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version constants for the library and its packages
const (
	// Library version
	Library = "0.1.0"

	// Package versions
	Timex   = "0.3.0"
	Datex   = "0.1.0"
	Stringx = "0.3.0"
	Seqx    = "0.1.0"
	Mathx   = "0.3.0"
	Log     = "0.3.0"
	CLI     = "0.1.0"
)

// Set at build time via -ldflags "-X github.com/msto63/quickx/pkg/core/version.Commit=..."
var (
	Commit    = ""
	BuildDate = ""
)

// PackageVersion returns the version for a given package name
func PackageVersion(name string) string {
	switch name {
	case "timex":
		return Timex
	case "datex":
		return Datex
	case "stringx":
		return Stringx
	case "seqx":
		return Seqx
	case "mathx":
		return Mathx
	case "log":
		return Log
	case "cli", "quickx":
		return CLI
	default:
		return Library
	}
}

// Info describes the running binary
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get collects build information. Commit falls back to the VCS revision
// recorded by the Go toolchain when no ldflags value was set.
func Get() Info {
	info := Info{
		Version:   Library,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			}
		}
	}
	return info
}

// String renders the info on one line
func (i Info) String() string {
	commit := i.Commit
	if commit == "" {
		commit = "unknown"
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("quickx %s (%s) %s %s", i.Version, commit, i.GoVersion, i.Platform)
}
