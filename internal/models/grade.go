package models

// Grade is a single dated mark of a student in a class subject.
type Grade struct {
	ID             int64  `db:"id" json:"id"`
	StudentID      int64  `db:"student_id" json:"studentId"`
	ClassSubjectID int64  `db:"class_subject_id" json:"classSubjectId"`
	GradeValue     string `db:"grade_value" json:"gradeValue"`
	Date           Date   `db:"date" json:"date"`
}

// QuarterlyGrade is the final mark of a student in a subject for a term.
type QuarterlyGrade struct {
	ID         int64  `db:"id" json:"id"`
	StudentID  int64  `db:"student_id" json:"studentId"`
	SubjectID  int64  `db:"subject_id" json:"subjectId"`
	GradeValue string `db:"grade_value" json:"gradeValue"`
	TermID     int64  `db:"term_id" json:"termId"`
}

// AssessmentType names a kind of term assessment for a subject (exam, project...).
type AssessmentType struct {
	ID        int64  `db:"id" json:"id"`
	SubjectID int64  `db:"subject_id" json:"subjectId"`
	Name      string `db:"name" json:"name"`
}

// TermAssessment is a mark of a student for one assessment type in a term.
type TermAssessment struct {
	ID               int64  `db:"id" json:"id"`
	StudentID        int64  `db:"student_id" json:"studentId"`
	SubjectID        int64  `db:"subject_id" json:"subjectId"`
	AssessmentTypeID int64  `db:"assessment_type_id" json:"assessmentTypeId"`
	GradeValue       string `db:"grade_value" json:"gradeValue"`
	TermID           int64  `db:"term_id" json:"termId"`
}
