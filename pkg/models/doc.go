// Package models provides the shared data types for c-init.
//
// # Toolchain Choices
//
// A generated project targets one of two compilers:
//   - Clang: LLVM clang, the default
//   - GCC: GNU gcc (versioned gcc-N binaries are preferred on macOS)
//
// # Strictness Tiers
//
// Warning rigor is expressed as one of three ordered tiers. Each tier is a
// superset of the one below it:
//
//	models.StrictnessLoose < models.StrictnessStrict < models.StrictnessStrictest
//
// The same tier domain is used for compiler warnings and for the
// .clang-tidy linter configuration, but the two are resolved independently.
//
// # Resolved Configuration
//
// [Config] is the result of merging explicit flags, wizard answers and
// defaults. It is a plain value: once built it is passed by value and
// never modified.
package models
