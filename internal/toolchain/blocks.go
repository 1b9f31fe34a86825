package toolchain

// Named flag blocks. Each tier is a concatenation of these blocks, one
// token per line. Blank lines are ignored.
const (
	flagsLooseBase = `
-std=c2x
-Iinclude
-Wall
-Wextra
`

	flagsStrictCommon = `
-Werror
-Wpedantic
-Wcast-align
-Wpointer-arith
-Wmissing-prototypes
-Wstrict-prototypes
-Wsign-conversion
-Wswitch-enum
-Wconversion
-Wcast-qual
-Wshadow
`

	flagsStrictestCommon = `
-Wundef
-Wformat=2
-Wfloat-equal
-Wswitch-default
-Wdouble-promotion
`

	flagsClangSystemIncludes = `
-isystem/opt/homebrew/include
-isystem/usr/local/include
`

	flagsClangStrictExtra = ``

	flagsClangStrictestExtra = `-Wstrict-overflow=5`

	flagsGCCSystemIncludes = ``

	flagsGCCStrictExtra = `
-Wlogical-op
-Wjump-misses-init
`

	flagsGCCStrictestExtra = `
-Wstrict-overflow=2
-Wduplicated-cond
-Wduplicated-branches
-Wrestrict
-Wnull-dereference
-Wjump-misses-init
`

	// ProjectIncludeFlag is the include flag rewritten for the tests directory.
	ProjectIncludeFlag = "-Iinclude"

	// clangd resolves the include directory from within ./tests; -isystem
	// keeps warnings from the vendored test header out of lint output.
	flagsTestInclude = `
-I../include
-I.
-isystem
./test-deps
`
)

// variantBlocks holds the compiler-specific blocks for one toolchain.
type variantBlocks struct {
	systemIncludes string
	strictExtra    string
	strictestExtra string
}
