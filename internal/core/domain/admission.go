package domain

import (
	"errors"
	"time"
)

var ErrAdmissionNotFound = errors.New("admission not found")

// Admission records a student's enrollment in an instrument class.
// Written and deleted in single independent store calls; there is no
// surrounding transaction.
type Admission struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	InstrumentID   string    `json:"instrument_id"`
	InstrumentName string    `json:"instrument_name"`
	InstructorName string    `json:"instructor_name,omitempty"`
	Price          float64   `json:"price"`
	Date           time.Time `json:"date"`
}
