package toolchain

import (
	"errors"
	"testing"

	"github.com/c-init/c-init/pkg/models"
)

func fakeLookPath(available ...string) LookPathFunc {
	return func(file string) (string, error) {
		for _, a := range available {
			if a == file {
				return "/usr/local/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestInvocationName(t *testing.T) {
	tests := []struct {
		name      string
		compiler  models.Compiler
		platform  string
		available []string
		want      string
	}{
		{"clang on darwin", models.CompilerClang, "darwin", []string{"gcc-15"}, "clang"},
		{"gcc on linux ignores versions", models.CompilerGCC, "linux", []string{"gcc-14"}, "gcc"},
		{"gcc on darwin prefers newest", models.CompilerGCC, "darwin", []string{"gcc-13", "gcc-15"}, "gcc-15"},
		{"gcc on darwin falls through order", models.CompilerGCC, "darwin", []string{"gcc-13", "gcc-14"}, "gcc-14"},
		{"gcc on darwin without versions", models.CompilerGCC, "darwin", nil, "gcc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InvocationName(tt.compiler, tt.platform, fakeLookPath(tt.available...))
			if got != tt.want {
				t.Errorf("InvocationName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvocationName_DoesNotAffectFlags(t *testing.T) {
	before := Compose(models.CompilerGCC, models.StrictnessStrict)
	_ = InvocationName(models.CompilerGCC, "darwin", fakeLookPath("gcc-15"))
	if after := Compose(models.CompilerGCC, models.StrictnessStrict); after != before {
		t.Error("invocation probing changed the flag text")
	}
}

func TestSanitizersUnreliable(t *testing.T) {
	tests := []struct {
		platform, invocation string
		want                 bool
	}{
		{"darwin", "gcc", true},
		{"darwin", "gcc-14", true},
		{"darwin", "clang", false},
		{"linux", "gcc", false},
	}
	for _, tt := range tests {
		if got := SanitizersUnreliable(tt.platform, tt.invocation); got != tt.want {
			t.Errorf("SanitizersUnreliable(%q, %q) = %v, want %v", tt.platform, tt.invocation, got, tt.want)
		}
	}
}
