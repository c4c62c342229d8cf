package models

// Term models a named date interval of a school, e.g. a quarter.
type Term struct {
	ID        int64  `db:"id" json:"id"`
	SchoolID  int64  `db:"school_id" json:"schoolId"`
	Name      string `db:"name" json:"name"`
	StartDate Date   `db:"start_date" json:"startDate"`
	EndDate   Date   `db:"end_date" json:"endDate"`
}

// Window returns the inclusive date range covered by the term.
func (t Term) Window() Window {
	return Window{Start: t.StartDate, End: t.EndDate}
}
