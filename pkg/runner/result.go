package runner

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the absolute file path.
	Path string

	// Original is the content read from disk.
	Original []byte

	// Output is the processed content. Nil when the processor produced none.
	Output []byte

	// Changed reports Output differs from Original.
	Changed bool

	// Written reports Output was written back to Path.
	Written bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesChanged    int
	FilesWritten    int
	FilesErrored    int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome
	Stats Stats
}

// HasChanges reports whether any file would change.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesProcessed++
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
}
