package runner

import (
	"demoodle/internal/answerkey"
	"demoodle/internal/config"
	"demoodle/internal/grading"
	"demoodle/internal/result"
)

// runPlan holds the per-stage options derived from a config.
type runPlan struct {
	key        answerkey.Options
	read       result.ReadOptions
	partTag    string
	empty      string
	misaligned string
	grading    grading.Options
}

func planFromConfig(cfg config.Config) runPlan {
	config.Normalize(&cfg)
	return runPlan{
		key: answerkey.Options{
			Policy:         answerkey.Policy(cfg.Columns.Policy),
			ScoredKinds:    cfg.Columns.ScoredKinds,
			QuestionLabel:  cfg.Labels.Question,
			PartLabel:      cfg.Labels.Part,
			Separator:      cfg.Output.ReferenceSeparator,
			EmptyReference: cfg.Output.EmptyReference,
		},
		read: result.ReadOptions{
			Delimiter:   cfg.Results.DelimiterRune(),
			SkipColumns: cfg.Results.Skip(),
		},
		partTag:    cfg.Results.PartTag,
		empty:      cfg.Output.EmptyAnswer,
		misaligned: cfg.Output.Misaligned,
		grading: grading.Options{
			Labels: grading.Labels{
				Identity:  pair(cfg.Labels.Identity),
				Reference: pair(cfg.Labels.Reference),
			},
			DropMisaligned: cfg.Results.Alignment == config.AlignmentDrop,
		},
	}
}

func pair(values []string) [2]string {
	var out [2]string
	copy(out[:], values)
	return out
}

// KeyOptions returns the answer key options a config selects.
func KeyOptions(cfg config.Config) answerkey.Options {
	return planFromConfig(cfg).key
}
