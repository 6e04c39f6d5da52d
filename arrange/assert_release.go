//go:build release

package arrange

// assert is compiled out entirely in release builds.
func assert(cond bool, msg string) {}
