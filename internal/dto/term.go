package dto

// TermRequest carries term dates as raw yyyy-MM-dd strings so that parse
// failures can be reported separately from missing fields.
type TermRequest struct {
	ID        int64  `json:"id"`
	SchoolID  int64  `json:"schoolId"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
