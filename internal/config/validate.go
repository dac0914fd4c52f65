package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validateColumns(cfg.Columns, collector)
	validateResults(cfg.Results, collector)
	validateOutput(cfg.Output, collector)
	validateLabels(cfg.Labels, collector)

	return collector.result()
}

func validateColumns(columns ColumnsConfig, collector *issueCollector) {
	switch columns.Policy {
	case PolicyKind, PolicyArity:
	default:
		collector.add("columns.policy", fmt.Sprintf("unsupported policy %q (want kind or arity)", columns.Policy))
	}
	seen := map[string]struct{}{}
	for i, kind := range columns.ScoredKinds {
		field := fmt.Sprintf("columns.scored_kinds[%d]", i)
		switch {
		case kind == "":
			collector.add(field, "is required")
		case strings.IndexFunc(kind, notLetter) >= 0:
			collector.add(field, fmt.Sprintf("kind %q must contain only letters", kind))
		default:
			if _, ok := seen[kind]; ok {
				collector.add("columns.scored_kinds", fmt.Sprintf("duplicate kind %q", kind))
			}
			seen[kind] = struct{}{}
		}
	}
}

func validateResults(results ResultsConfig, collector *issueCollector) {
	if utf8.RuneCountInString(results.Delimiter) != 1 {
		collector.add("results.delimiter", fmt.Sprintf("must be a single character, got %q", results.Delimiter))
	} else if strings.ContainsAny(results.Delimiter, "\"\r\n") {
		collector.add("results.delimiter", fmt.Sprintf("invalid delimiter %q", results.Delimiter))
	}
	if results.Skip() < 0 {
		collector.add("results.skip_columns", "must be >= 0")
	}
	if strings.ContainsAny(results.PartTag, ":;") {
		collector.add("results.part_tag", fmt.Sprintf("tag %q must not contain ':' or ';'", results.PartTag))
	}
	switch results.Alignment {
	case AlignmentDegrade, AlignmentDrop:
	default:
		collector.add("results.alignment", fmt.Sprintf("unsupported mode %q (want degrade or drop)", results.Alignment))
	}
}

func validateOutput(output OutputConfig, collector *issueCollector) {
	if output.ReferenceSeparator == " " {
		collector.add("output.reference_separator", "must not be a single space")
	}
	if output.Misaligned == output.EmptyAnswer {
		collector.add("output.misaligned", "must differ from output.empty_answer")
	}
}

func validateLabels(labels LabelsConfig, collector *issueCollector) {
	if len(labels.Identity) != 2 {
		collector.add("labels.identity", fmt.Sprintf("must have exactly 2 entries, got %d", len(labels.Identity)))
	}
	if len(labels.Reference) != 2 {
		collector.add("labels.reference", fmt.Sprintf("must have exactly 2 entries, got %d", len(labels.Reference)))
	}
}

func notLetter(r rune) bool {
	return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z')
}
