package models

// Window is an inclusive [Start, End] date range used to filter dated rows.
type Window struct {
	Start Date
	End   Date
}

// Empty reports whether the window cannot match any date.
func (w Window) Empty() bool {
	return w.End.Before(w.Start)
}

// Contains reports whether d falls inside the window, bounds included.
func (w Window) Contains(d Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(w.Start) && !d.After(w.End)
}
