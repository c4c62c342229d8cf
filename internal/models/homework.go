package models

// Homework is an assignment for a class subject with a due date.
type Homework struct {
	ID             int64  `db:"id" json:"id"`
	ClassSubjectID int64  `db:"class_subject_id" json:"classSubjectId"`
	Description    string `db:"description" json:"description"`
	DueDate        Date   `db:"due_date" json:"dueDate"`
}
