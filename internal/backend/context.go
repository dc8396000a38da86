package backend

import (
	"fmt"
	"strconv"
	"strings"
)

// LanguageVersion is a major.minor source language version.
type LanguageVersion struct {
	Major int
	Minor int
}

// Version14 is the first language version that lowers `!!` to the unified check.
var Version14 = LanguageVersion{Major: 1, Minor: 4}

// DefaultLanguageVersion is used when Config.LanguageVersion is empty.
var DefaultLanguageVersion = LanguageVersion{Major: 1, Minor: 9}

// ParseLanguageVersion parses "major.minor".
func ParseLanguageVersion(s string) (LanguageVersion, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 2 {
		return LanguageVersion{}, fmt.Errorf("invalid language version %q: expected major.minor", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return LanguageVersion{}, fmt.Errorf("invalid language version %q: bad major component", s)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return LanguageVersion{}, fmt.Errorf("invalid language version %q: bad minor component", s)
	}
	return LanguageVersion{Major: major, Minor: minor}, nil
}

// AtLeast reports whether v is the same as or newer than other.
func (v LanguageVersion) AtLeast(other LanguageVersion) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// String returns the "major.minor" form of the version
func (v LanguageVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Config holds the compiler options that affect backend lowering.
type Config struct {
	LanguageVersion     string // "major.minor"; empty means DefaultLanguageVersion
	NoUnifiedNullChecks bool   // force the pre-1.4 inline throw lowering
}

// Context is the read-only backend state shared by lowering passes.
// It is never mutated after NewContext returns, so one Context may be used
// by passes running on different files at the same time.
type Context struct {
	Symbols           *Symbols
	LanguageVersion   LanguageVersion
	UnifiedNullChecks bool
}

// NewContext resolves cfg into a Context with a fresh symbol table.
func NewContext(cfg Config) (*Context, error) {
	version := DefaultLanguageVersion
	if cfg.LanguageVersion != "" {
		v, err := ParseLanguageVersion(cfg.LanguageVersion)
		if err != nil {
			return nil, fmt.Errorf("backend config: %w", err)
		}
		version = v
	}

	return &Context{
		Symbols:           NewSymbols(),
		LanguageVersion:   version,
		UnifiedNullChecks: version.AtLeast(Version14) && !cfg.NoUnifiedNullChecks,
	}, nil
}
