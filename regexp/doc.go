// Package regexp compiles builder output with the fastest engine able to run
// it.
//
// Patterns are compiled with coregex (an accelerated RE2-compatible engine)
// unless they use constructs RE2 cannot execute, such as lookarounds,
// back-references, `(?<name>...)` groups or empty character classes. Those
// fall back to [regexp2].
//
// Compilation takes a flag string over the alphabet "dgimsuy" (see
// [ParseFlags]) and functional options. Compiled values are cached by flags
// and pattern unless [WithoutCache] is given.
package regexp
