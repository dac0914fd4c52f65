package quiz

import "fmt"

// StructureError reports a question node without a usable name or body.
type StructureError struct {
	Index int
	Type  string
	Field string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("question %d (%s): missing %s", e.Index+1, e.Type, e.Field)
}
