package live

// State is the view state of the preview, independent of Bubble Tea.
type State struct {
	// Learners are the learner rows of the grading table.
	Learners [][]string
	// Degraded marks learner rows (by learner index) that failed alignment.
	Degraded map[int]bool
	// DegradedOnly hides rows that aligned cleanly.
	DegradedOnly bool
	// Visible maps table rows back to learner indexes.
	Visible []int
	Cursor  int
}

// Action is a user intent understood by Reduce.
type Action int

const (
	ActionNone Action = iota
	ActionToggleDegraded
	ActionUp
	ActionDown
	ActionTop
	ActionBottom
)
