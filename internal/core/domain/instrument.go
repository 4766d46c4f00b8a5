package domain

import (
	"errors"
	"time"
)

// InstrumentStatus tracks a catalog entry through the review flow.
type InstrumentStatus string

const (
	InstrumentPending  InstrumentStatus = "pending"
	InstrumentApproved InstrumentStatus = "approved"
	InstrumentDenied   InstrumentStatus = "denied"
)

var ErrInstrumentNotFound = errors.New("instrument not found")
var ErrInvalidStatus = errors.New("invalid instrument status")

// ParseInstrumentStatus maps a wire string onto the closed status set.
func ParseInstrumentStatus(s string) (InstrumentStatus, error) {
	switch InstrumentStatus(s) {
	case InstrumentPending, InstrumentApproved, InstrumentDenied:
		return InstrumentStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Instrument is a course offering in the catalog: one instrument class
// taught by one instructor. Created by instructors, reviewed by admins.
type Instrument struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Image            string           `json:"image,omitempty"`
	InstructorName   string           `json:"instructor_name"`
	InstructorEmail  string           `json:"instructor_email"`
	Price            float64          `json:"price"`
	AvailableSeats   int              `json:"available_seats"`
	EnrolledStudents int              `json:"enrolled_students"`
	Status           InstrumentStatus `json:"status"`
	Feedback         string           `json:"feedback,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}
