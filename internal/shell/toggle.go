package shell

import "github.com/ziadkadry99/livingcost/internal/components"

// SidebarState is the visibility of the navigation panel.
type SidebarState int

const (
	Closed SidebarState = iota
	Open
)

func (s SidebarState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// ToggleState is the sidebar state together with the click counters it was
// last computed from.
type ToggleState struct {
	State       SidebarState
	OpenClicks  int
	CloseClicks int
}

// Initial is the state before any control has been clicked.
var Initial = ToggleState{State: Closed}

// Next applies a new pair of click counters to prev.
//
// A control whose counter grew since prev was clicked. If only one grew, it
// wins. If both grew in the same event, the larger counter wins and a tie
// closes the panel. If neither grew, the state is unchanged.
// app.js implements the same rule.
func Next(prev ToggleState, openClicks, closeClicks int) ToggleState {
	next := ToggleState{State: prev.State, OpenClicks: openClicks, CloseClicks: closeClicks}

	openedNow := openClicks > prev.OpenClicks
	closedNow := closeClicks > prev.CloseClicks

	switch {
	case openedNow && closedNow:
		if openClicks > closeClicks {
			next.State = Open
		} else {
			next.State = Closed
		}
	case openedNow:
		next.State = Open
	case closedNow:
		next.State = Closed
	}
	return next
}

// Toggle resolves a counter pair observed from the initial state.
func Toggle(openClicks, closeClicks int) SidebarState {
	return Next(Initial, openClicks, closeClicks).State
}

// ClassName is the sidebar class attribute for s.
func ClassName(s SidebarState) string {
	if s == Open {
		return components.SidebarOpenClass
	}
	return components.SidebarClosedClass
}
