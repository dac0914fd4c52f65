// Package answerkey flattens the directives of a quiz into graded slots: one
// slot per directive, one placeholder slot per question without directives.
// The resulting ColumnMask selects which slots become grading columns.
package answerkey

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"demoodle/internal/cloze"
	"demoodle/internal/quiz"
)

// Policy selects which slots are graded columns. Exactly one is active per run.
type Policy string

const (
	// PolicyKind keeps slots whose directive kind is in the scored set.
	PolicyKind Policy = "kind"
	// PolicyArity keeps slots only from questions with exactly one directive.
	PolicyArity Policy = "arity"
)

// ErrUnknownPolicy is returned for a policy other than kind or arity.
var ErrUnknownPolicy = errors.New("unknown column policy")

// Options controls labeling, reference text and column selection.
type Options struct {
	Policy         Policy
	ScoredKinds    []string
	QuestionLabel  string
	PartLabel      string
	Separator      string
	EmptyReference string
}

// DefaultOptions returns the kind policy keeping short-answer directives.
func DefaultOptions() Options {
	return Options{
		Policy:         PolicyKind,
		ScoredKinds:    []string{"shortanswer"},
		QuestionLabel:  "Question",
		PartLabel:      "Part",
		Separator:      "|",
		EmptyReference: "<>",
	}
}

// Group is the contiguous slot range owned by one quiz question.
type Group struct {
	Question int
	Start    int
	Len      int
	// Atomic groups come from questions without directives; their response
	// cell is one value and is never split into parts.
	Atomic bool
	// Excluded groups own no slots; their response cell is dropped.
	Excluded bool
}

// Key holds the flattened slot vectors of a quiz. Mask, Headers, References
// and Kinds all have one entry per slot.
type Key struct {
	Mask       []bool
	Headers    []string
	References []string
	Kinds      []string
	Groups     []Group
	// Separator joins the alternatives of each reference.
	Separator string
	// Ambiguous lists full-credit answers that contain Separator.
	Ambiguous []AmbiguousReference
}

// AmbiguousReference is a full-credit answer containing the reference
// separator. Splitting its slot's reference yields alternatives the quiz
// never listed.
type AmbiguousReference struct {
	Question  int
	Slot      int
	Answer    string
	Separator string
}

func (a AmbiguousReference) String() string {
	return fmt.Sprintf("question %d slot %d: full-credit answer %q contains the reference separator %q",
		a.Question+1, a.Slot+1, a.Answer, a.Separator)
}

// Slots returns the unmasked slot count.
func (k Key) Slots() int {
	return len(k.Mask)
}

// Width returns the number of kept slots.
func (k Key) Width() int {
	width := 0
	for _, keep := range k.Mask {
		if keep {
			width++
		}
	}
	return width
}

// Apply filters a slot-aligned vector through the mask.
func (k Key) Apply(values []string) ([]string, error) {
	if len(values) != len(k.Mask) {
		return nil, fmt.Errorf("apply mask: %d values for %d slots", len(values), len(k.Mask))
	}
	kept := make([]string, 0, k.Width())
	for i, keep := range k.Mask {
		if keep {
			kept = append(kept, values[i])
		}
	}
	return kept, nil
}

// MaskedHeaders returns the header labels of the kept slots.
func (k Key) MaskedHeaders() []string {
	headers, _ := k.Apply(k.Headers)
	return headers
}

// MaskedReferences returns the reference answers of the kept slots.
func (k Key) MaskedReferences() []string {
	references, _ := k.Apply(k.References)
	return references
}

// Build flattens a quiz into a key. Grammar failures never abort the build;
// their placeholder directives keep their slot.
func Build(q quiz.Quiz, opts Options) (Key, error) {
	keep, err := opts.selector()
	if err != nil {
		return Key{}, err
	}
	key := Key{Separator: opts.Separator}
	for _, question := range q.Questions {
		group := Group{Question: question.Index, Start: len(key.Mask)}
		switch {
		case question.Excluded():
			group.Excluded = true
		case len(question.Directives) == 0:
			group.Atomic = true
			group.Len = 1
			key.add(opts.questionLabel(question.Index), opts.EmptyReference, "", false)
		default:
			arity := len(question.Directives)
			for part, directive := range question.Directives {
				header := opts.questionLabel(question.Index)
				if arity > 1 {
					header = opts.partLabel(question.Index, part)
				}
				key.add(header, opts.reference(directive), directive.Kind, keep(directive, arity))
				key.Ambiguous = append(key.Ambiguous, opts.ambiguous(question.Index, len(key.Mask)-1, directive)...)
			}
			group.Len = arity
		}
		key.Groups = append(key.Groups, group)
	}
	return key, nil
}

func (k *Key) add(header, reference, kind string, keep bool) {
	k.Mask = append(k.Mask, keep)
	k.Headers = append(k.Headers, header)
	k.References = append(k.References, reference)
	k.Kinds = append(k.Kinds, kind)
}

func (opts Options) selector() (func(cloze.Directive, int) bool, error) {
	switch opts.Policy {
	case PolicyKind:
		kinds := make([]string, 0, len(opts.ScoredKinds))
		for _, kind := range opts.ScoredKinds {
			kinds = append(kinds, strings.ToLower(strings.TrimSpace(kind)))
		}
		return func(d cloze.Directive, _ int) bool {
			return slices.Contains(kinds, d.Kind)
		}, nil
	case PolicyArity:
		return func(_ cloze.Directive, arity int) bool {
			return arity == 1
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, opts.Policy)
	}
}

func (opts Options) questionLabel(index int) string {
	return fmt.Sprintf("%s %d", opts.QuestionLabel, index+1)
}

func (opts Options) partLabel(index, part int) string {
	return fmt.Sprintf("%s %d %s %d", opts.QuestionLabel, index+1, opts.PartLabel, part+1)
}

// reference joins the full-credit answers of a directive. Placeholders and
// directives without a full-credit answer get the empty marker.
func (opts Options) reference(d cloze.Directive) string {
	correct := d.CorrectTexts()
	if len(correct) == 0 {
		return opts.EmptyReference
	}
	return strings.Join(correct, opts.Separator)
}

func (opts Options) ambiguous(question, slot int, d cloze.Directive) []AmbiguousReference {
	if opts.Separator == "" {
		return nil
	}
	var out []AmbiguousReference
	for _, text := range d.CorrectTexts() {
		if strings.Contains(text, opts.Separator) {
			out = append(out, AmbiguousReference{Question: question, Slot: slot, Answer: text, Separator: opts.Separator})
		}
	}
	return out
}
