package live

// Reduce applies an action and recomputes the visible rows.
func Reduce(state State, action Action) State {
	switch action {
	case ActionToggleDegraded:
		state.DegradedOnly = !state.DegradedOnly
		state.Cursor = 0
	case ActionUp:
		state.Cursor--
	case ActionDown:
		state.Cursor++
	case ActionTop:
		state.Cursor = 0
	case ActionBottom:
		state.Cursor = len(state.Learners)
	}
	state.Visible = visibleRows(state)
	state.Cursor = clamp(state.Cursor, 0, len(state.Visible)-1)
	return state
}

// visibleRows lists the learner indexes shown under the current filter.
func visibleRows(state State) []int {
	visible := make([]int, 0, len(state.Learners))
	for i := range state.Learners {
		if state.DegradedOnly && !state.Degraded[i] {
			continue
		}
		visible = append(visible, i)
	}
	return visible
}

func clamp(value, low, high int) int {
	if high < low {
		return low
	}
	return max(low, min(value, high))
}

// actionForKey maps a key name to an action.
func actionForKey(key string) Action {
	switch key {
	case "d":
		return ActionToggleDegraded
	case "up", "k":
		return ActionUp
	case "down", "j":
		return ActionDown
	case "home", "g":
		return ActionTop
	case "end", "G":
		return ActionBottom
	default:
		return ActionNone
	}
}
