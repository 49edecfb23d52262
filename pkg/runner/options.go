// Package runner discovers SWON files and processes them concurrently.
package runner

// Options controls multi-file processing.
type Options struct {
	// Paths are the user-specified files or directories.
	// If empty, defaults to the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and globs.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions are the lowercase file extensions, with leading dot,
	// considered SWON. Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs restrict discovery when non-empty.
	IncludeGlobs []string

	// ExcludeGlobs skip files or directories; they merge config ignore
	// patterns with --ignore.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int
}

// DefaultExtensions returns the default set of SWON file extensions.
func DefaultExtensions() []string {
	return []string{".swon"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
