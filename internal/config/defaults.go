package config

// Defaults applied by Normalize to fields left empty.
const (
	DefaultPolicy             = "kind"
	DefaultScoredKind         = "shortanswer"
	DefaultDelimiter          = ","
	DefaultSkipColumns        = 9
	DefaultPartTag            = "Teil"
	DefaultAlignment          = "degrade"
	DefaultEmptyAnswer        = "leer"
	DefaultEmptyReference     = "<>"
	DefaultMisaligned         = "<misaligned>"
	DefaultReferenceSeparator = "|"
	DefaultQuestionLabel      = "Question"
	DefaultPartLabel          = "Part"
)

// Supported enumerations.
const (
	PolicyKind       = "kind"
	PolicyArity      = "arity"
	AlignmentDegrade = "degrade"
	AlignmentDrop    = "drop"
)

// Default returns a normalized config used when no config file is found.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
