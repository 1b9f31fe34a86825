package toolchain

import (
	"os/exec"
	"strings"

	"github.com/c-init/c-init/pkg/models"
)

// PlatformDarwin is the runtime.GOOS value for macOS.
const PlatformDarwin = "darwin"

// gccCandidates are probed in order on macOS, where "gcc" is usually an
// alias for Apple clang.
var gccCandidates = []string{"gcc-15", "gcc-14", "gcc-13"}

// LookPathFunc searches the executable path for a binary.
type LookPathFunc func(file string) (string, error)

// InvocationName returns the compiler command written into the Makefile.
// On macOS a versioned GNU gcc is preferred when one is installed. A nil
// lookPath uses exec.LookPath.
func InvocationName(c models.Compiler, platform string, lookPath LookPathFunc) string {
	name := string(c)
	if c != models.CompilerGCC || platform != PlatformDarwin {
		return name
	}
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, candidate := range gccCandidates {
		if _, err := lookPath(candidate); err == nil {
			return candidate
		}
	}
	return name
}

// SanitizersUnreliable reports whether the ASan runtime is known to be
// missing for this compiler on this platform.
func SanitizersUnreliable(platform, invocation string) bool {
	return platform == PlatformDarwin && strings.HasPrefix(invocation, "gcc")
}
