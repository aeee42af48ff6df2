package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"
	FieldInput = "input"

	// Highlight fields.
	FieldPart  = "part"
	FieldToken = "token"

	// Format fields.
	FieldAutoIndent = "auto_indent"
	FieldWrite      = "write"
	FieldModified   = "modified"

	// Tokenizer fields.
	FieldTokensTotal = "tokens_total"
	FieldSourceBytes = "source_bytes"

	// Dependency fields.
	FieldDependencies = "dependencies"
	FieldKind         = "kind"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
