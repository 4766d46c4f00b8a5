package domain

import "errors"

var ErrInstructorNotFound = errors.New("instructor not found")

// Instructor is the public profile shown on the instructors page.
// Kept separate from User: not every instructor profile corresponds to
// a registered account.
type Instructor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Image        string   `json:"image,omitempty"`
	StudentCount int      `json:"student_count"`
	Instruments  []string `json:"instruments,omitempty"`
}
