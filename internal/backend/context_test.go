package backend

import (
	"strings"
	"testing"
)

func TestNewContextUnifiedNullChecks(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"default version", Config{}, true},
		{"exactly 1.4", Config{LanguageVersion: "1.4"}, true},
		{"2.0", Config{LanguageVersion: "2.0"}, true},
		{"1.3 predates unified checks", Config{LanguageVersion: "1.3"}, false},
		{"explicitly disabled", Config{LanguageVersion: "1.9", NoUnifiedNullChecks: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := NewContext(tt.cfg)
			if err != nil {
				t.Fatalf("NewContext: %v", err)
			}
			if ctx.UnifiedNullChecks != tt.want {
				t.Errorf("UnifiedNullChecks = %v, want %v", ctx.UnifiedNullChecks, tt.want)
			}
		})
	}
}

func TestNewContextBadVersion(t *testing.T) {
	for _, v := range []string{"1", "1.x", "one.four", "1.4.2", "-1.4"} {
		_, err := NewContext(Config{LanguageVersion: v})
		if err == nil {
			t.Errorf("expected error for version %q", v)
			continue
		}
		if !strings.Contains(err.Error(), "backend config") {
			t.Errorf("expected wrapped error, got: %v", err)
		}
	}
}

func TestParseLanguageVersion(t *testing.T) {
	v, err := ParseLanguageVersion(" 1.12 ")
	if err != nil {
		t.Fatal(err)
	}
	if v.Major != 1 || v.Minor != 12 {
		t.Errorf("got %v, want 1.12", v)
	}
	if v.String() != "1.12" {
		t.Errorf("String() = %q", v.String())
	}
	if !v.AtLeast(Version14) || Version14.AtLeast(v) {
		t.Error("expected 1.12 > 1.4")
	}
}

func TestSymbolsAreDistinct(t *testing.T) {
	s := NewSymbols()
	if s.CheckNotNull == s.CheckNotNullUnified || s.CheckNotNull == s.ThrowNpe || s.ThrowNpe == s.CheckNotNullUnified {
		t.Fatal("intrinsic symbols must be distinct")
	}
	if NewSymbols().CheckNotNull == s.CheckNotNull {
		t.Error("each symbol table should mint its own symbols")
	}
	for _, sym := range []string{s.CheckNotNull.Name, s.CheckNotNullUnified.Name, s.ThrowNpe.Name} {
		if sym == "" {
			t.Error("intrinsic symbol has empty name")
		}
	}
}
