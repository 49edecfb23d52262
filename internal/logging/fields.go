package logging

// Structured log field names.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Document processing.
	FieldBytes    = "bytes"
	FieldNodes    = "nodes"
	FieldCommands = "commands"
	FieldTokens   = "tokens"
	FieldChanged  = "changed"
	FieldSeed     = "seed"
	FieldFormat   = "format"

	// Run statistics.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChanged    = "files_changed"
	FieldFilesFailed     = "files_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
