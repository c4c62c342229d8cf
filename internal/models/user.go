package models

// UserRole is the closed set of roles a user may hold.
type UserRole string

const (
	RoleStudent  UserRole = "Student"
	RoleTeacher  UserRole = "Teacher"
	RoleDirector UserRole = "Director"
	RoleParent   UserRole = "Parent"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleDirector, RoleParent:
		return true
	}
	return false
}

// User is a member of a school.
type User struct {
	ID       int64    `db:"id" json:"id"`
	Name     string   `db:"name" json:"name"`
	Email    string   `db:"email" json:"email"`
	Role     UserRole `db:"role" json:"role"`
	SchoolID int64    `db:"school_id" json:"schoolId"`
}

// Parent is the guardian of a student user.
type Parent struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	SchoolID  int64  `db:"school_id" json:"schoolId"`
	StudentID int64  `db:"student_id" json:"studentId"`
}

// School is referenced by users, parents and terms.
type School struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address"`
}
