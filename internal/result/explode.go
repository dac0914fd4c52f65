package result

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultPartTag is the word Moodle's German locale puts before part numbers.
const DefaultPartTag = "Teil"

// Part is one tagged segment of a packed response cell.
type Part struct {
	Tag   int
	Value string
}

// Exploder splits packed response cells such as "Teil 1: a; Teil 2: b".
type Exploder struct {
	pattern *regexp.Regexp
}

var defaultExploder = NewExploder(DefaultPartTag)

// NewExploder builds an exploder for the given part tag word.
func NewExploder(tag string) *Exploder {
	if strings.TrimSpace(tag) == "" {
		tag = DefaultPartTag
	}
	return &Exploder{pattern: regexp.MustCompile(regexp.QuoteMeta(tag) + ` (\d+):[ ]?([^;]*)`)}
}

// Explode returns the tagged parts of a cell in the order they appear. A cell
// without any tagged part is returned whole as a single untagged part.
func (e *Exploder) Explode(cell string) []Part {
	if e == nil {
		e = defaultExploder
	}
	matches := e.pattern.FindAllStringSubmatch(cell, -1)
	if len(matches) == 0 {
		return []Part{{Value: cell}}
	}
	parts := make([]Part, 0, len(matches))
	for _, match := range matches {
		tag, err := strconv.Atoi(match[1])
		if err != nil {
			tag = -1
		}
		parts = append(parts, Part{Tag: tag, Value: match[2]})
	}
	return parts
}

// inOrder reports whether tagged parts are numbered 1..k ascending.
func inOrder(parts []Part) bool {
	for i, part := range parts {
		if part.Tag != i+1 {
			return false
		}
	}
	return true
}

func tags(parts []Part) []int {
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		out = append(out, part.Tag)
	}
	return out
}
