package config

import "strings"

// Normalize lowercases enumerations and fills empty fields with defaults.
func Normalize(cfg *Config) {
	cfg.Columns.Policy = strings.ToLower(strings.TrimSpace(cfg.Columns.Policy))
	if cfg.Columns.Policy == "" {
		cfg.Columns.Policy = DefaultPolicy
	}
	if len(cfg.Columns.ScoredKinds) == 0 {
		cfg.Columns.ScoredKinds = []string{DefaultScoredKind}
	}
	for i, kind := range cfg.Columns.ScoredKinds {
		cfg.Columns.ScoredKinds[i] = strings.ToLower(strings.TrimSpace(kind))
	}

	if cfg.Results.Delimiter == "" {
		cfg.Results.Delimiter = DefaultDelimiter
	}
	if cfg.Results.SkipColumns == nil {
		skip := DefaultSkipColumns
		cfg.Results.SkipColumns = &skip
	}
	cfg.Results.PartTag = strings.TrimSpace(cfg.Results.PartTag)
	if cfg.Results.PartTag == "" {
		cfg.Results.PartTag = DefaultPartTag
	}
	cfg.Results.Alignment = strings.ToLower(strings.TrimSpace(cfg.Results.Alignment))
	if cfg.Results.Alignment == "" {
		cfg.Results.Alignment = DefaultAlignment
	}

	setDefault(&cfg.Output.EmptyAnswer, DefaultEmptyAnswer)
	setDefault(&cfg.Output.EmptyReference, DefaultEmptyReference)
	setDefault(&cfg.Output.Misaligned, DefaultMisaligned)
	if cfg.Output.ReferenceSeparator == "" {
		cfg.Output.ReferenceSeparator = DefaultReferenceSeparator
	}

	setDefault(&cfg.Labels.Question, DefaultQuestionLabel)
	setDefault(&cfg.Labels.Part, DefaultPartLabel)
	if len(cfg.Labels.Identity) == 0 {
		cfg.Labels.Identity = []string{"Last name", "First name"}
	}
	if len(cfg.Labels.Reference) == 0 {
		cfg.Labels.Reference = []string{"Reference", "Answer key"}
	}
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}
