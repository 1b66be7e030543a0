// Package instructions turns the text of an instruction file into a
// validated list of instructions.
//
// The file is processed in a fixed order: comments are stripped,
// conditional directives are resolved, the text is split into trimmed
// non-empty lines, the optional default replacement map is merged, the
// declared format version is checked, placeholders are replaced and finally
// the lines between the instruction markers are parsed. Any failure stops
// the pipeline and nothing is returned for execution.
package instructions

// File layout constants
const (
	// FileName is the instruction file expected at the root of a template
	FileName = "lollywiz.txt"

	// EngineVersion is the newest instruction file format this engine reads
	EngineVersion = "0.1.0"

	// VersionVariable is the assignment that declares the file's format version
	VersionVariable = "LOLLYWIZ_TEXTFILE_VERSION"

	CommentOpen  = "/*"
	CommentClose = "*/"

	DefaultMapBegin   = "#default_replacement_map_begin"
	DefaultMapEnd     = "#default_replacement_map_end"
	InstructionsBegin = "#instructions_begin"
	InstructionsEnd   = "#instructions_end"
)
