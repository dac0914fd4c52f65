package cli

import (
	"flag"
	"io"
	"strings"

	"demoodle/internal/config"
	"demoodle/internal/runner"
)

// resolveConfigPath finds the config for a command; "" means defaults.
func resolveConfigPath(configPath string) (string, error) {
	return config.Resolve(configPath, "")
}

// runFlags are the config overrides shared by grade, preview and inspect.
// Fields stay nil when a command does not bind them.
type runFlags struct {
	configPath  *string
	policy      *string
	scoredKinds *string
	delimiter   *string
	skipColumns *int
	partTag     *string
	alignment   *string
	verbose     *bool
	noColor     *bool
}

// bindColumnFlags registers the flags that shape the answer key.
func bindColumnFlags(fs *flag.FlagSet) *runFlags {
	return &runFlags{
		configPath:  fs.String("config", "", "Path to config file (default: $DEMOODLE_CONFIG or .demoodle/config.yml)"),
		policy:      fs.String("policy", "", "Column policy: kind|arity"),
		scoredKinds: fs.String("scored-kinds", "", "Comma-separated directive kinds graded under the kind policy"),
	}
}

// bindRunFlags registers every flag of a grading run.
func bindRunFlags(fs *flag.FlagSet) *runFlags {
	flags := bindColumnFlags(fs)
	flags.delimiter = fs.String("delimiter", "", "Results field delimiter")
	flags.skipColumns = fs.Int("skip-columns", config.DefaultSkipColumns, "Metadata columns between identity and responses")
	flags.partTag = fs.String("part-tag", "", "Word that opens a response part, e.g. Teil")
	flags.alignment = fs.String("alignment", "", "Misaligned rows: degrade|drop")
	flags.verbose = fs.Bool("verbose", false, "Print per-stage progress")
	flags.noColor = fs.Bool("no-color", false, "Disable ANSI styling")
	return flags
}

// load resolves the config and applies the flags the user set explicitly.
func (f *runFlags) load(fs *flag.FlagSet) (config.Config, error) {
	path, err := resolveConfigPath(*f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return config.Config{}, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "policy":
			cfg.Columns.Policy = *f.policy
		case "scored-kinds":
			cfg.Columns.ScoredKinds = splitList(*f.scoredKinds)
		case "delimiter":
			cfg.Results.Delimiter = delimiterValue(*f.delimiter)
		case "skip-columns":
			skip := *f.skipColumns
			cfg.Results.SkipColumns = &skip
		case "part-tag":
			cfg.Results.PartTag = *f.partTag
		case "alignment":
			cfg.Results.Alignment = *f.alignment
		}
	})
	config.Normalize(&cfg)
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (f *runFlags) isVerbose() bool {
	return f.verbose != nil && *f.verbose
}

func (f *runFlags) isNoColor() bool {
	return f.noColor != nil && *f.noColor
}

// params builds runner parameters writing diagnostics to stderr.
func (f *runFlags) params(cfg config.Config, stderr io.Writer) runner.RunParams {
	return runner.RunParams{
		Config:        cfg,
		Verbose:       f.isVerbose(),
		VerboseWriter: stderr,
		WarningWriter: stderr,
		NoColor:       f.isNoColor(),
	}
}

// delimiterValue accepts escape spellings for a tab.
func delimiterValue(value string) string {
	switch strings.ToLower(value) {
	case `\t`, "tab":
		return "\t"
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
