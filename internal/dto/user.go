package dto

// UserRequest is the full-record payload for a school member.
type UserRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role"`
	SchoolID int64  `json:"schoolId"`
}

// ParentRequest is the full-record payload for a parent.
type ParentRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email" validate:"omitempty,email"`
	SchoolID  int64  `json:"schoolId"`
	StudentID int64  `json:"studentId"`
}

// SchoolRequest is the full-record payload for a school.
type SchoolRequest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
}
