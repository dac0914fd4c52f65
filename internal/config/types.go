package config

// Config is the run configuration read from .demoodle/config.yml.
type Config struct {
	Version int           `yaml:"version"`
	Columns ColumnsConfig `yaml:"columns"`
	Results ResultsConfig `yaml:"results"`
	Output  OutputConfig  `yaml:"output"`
	Labels  LabelsConfig  `yaml:"labels"`
}

type ColumnsConfig struct {
	Policy      string   `yaml:"policy"`
	ScoredKinds []string `yaml:"scored_kinds"`
}

type ResultsConfig struct {
	Delimiter string `yaml:"delimiter"`
	// SkipColumns is a pointer so an explicit 0 survives normalization.
	SkipColumns *int   `yaml:"skip_columns"`
	PartTag     string `yaml:"part_tag"`
	Alignment   string `yaml:"alignment"`
}

type OutputConfig struct {
	EmptyAnswer        string `yaml:"empty_answer"`
	EmptyReference     string `yaml:"empty_reference"`
	Misaligned         string `yaml:"misaligned"`
	ReferenceSeparator string `yaml:"reference_separator"`
}

type LabelsConfig struct {
	Question  string   `yaml:"question"`
	Part      string   `yaml:"part"`
	Identity  []string `yaml:"identity"`
	Reference []string `yaml:"reference"`
}

// Skip returns the configured metadata column count.
func (r ResultsConfig) Skip() int {
	if r.SkipColumns == nil {
		return DefaultSkipColumns
	}
	return *r.SkipColumns
}

// DelimiterRune returns the single field separator rune.
func (r ResultsConfig) DelimiterRune() rune {
	for _, value := range r.Delimiter {
		return value
	}
	return ','
}
