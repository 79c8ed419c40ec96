package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Library", Library},
		{"Timex", Timex},
		{"Datex", Datex},
		{"Stringx", Stringx},
		{"Seqx", Seqx},
		{"Mathx", Mathx},
		{"Log", Log},
		{"CLI", CLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestPackageVersion(t *testing.T) {
	tests := []struct {
		name     string
		pkg      string
		expected string
	}{
		{"timex package", "timex", Timex},
		{"datex package", "datex", Datex},
		{"stringx package", "stringx", Stringx},
		{"seqx package", "seqx", Seqx},
		{"mathx package", "mathx", Mathx},
		{"log package", "log", Log},
		{"cli", "quickx", CLI},
		{"unknown package", "unknown", Library},
		{"empty package", "", Library},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PackageVersion(tt.pkg)
			if result != tt.expected {
				t.Errorf("PackageVersion(%q) = %q, want %q", tt.pkg, result, tt.expected)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Library {
		t.Errorf("Get().Version = %q, want %q", info.Version, Library)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("Get().GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}

	s := Info{Version: "1.2.3", Commit: "0123456789abcdef", GoVersion: "go1.24.0", Platform: "linux/amd64"}.String()
	if want := "quickx 1.2.3 (0123456789ab) go1.24.0 linux/amd64"; s != want {
		t.Errorf("Info.String() = %q, want %q", s, want)
	}
	if !strings.Contains(Info{}.String(), "(unknown)") {
		t.Errorf("Info{}.String() should mark the commit unknown")
	}
}
