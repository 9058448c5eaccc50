package schedule

import (
	"sonoplan/pkg/domain"
	"sonoplan/pkg/gestation"
)

// CreateRequest holds the fields of a new schedule as received from callers.
// Dates are ISO yyyy-MM-dd strings; CorrectedLMP may be empty.
type CreateRequest struct {
	PatientID    domain.PatientID
	CreatedBy    domain.UserID
	LMP          string
	AUAWeeks     *int
	CorrectedLMP string
}

// UpdateRequest replaces the LMP and the optional corrections of a schedule.
type UpdateRequest struct {
	LMP          string
	AUAWeeks     *int
	CorrectedLMP string
}

// Plan is the scan schedule of a patient's current pregnancy.
type Plan struct {
	Schedule domain.Schedule `json:"schedule"`
	// DueDate is the schedule's EDD in dd-MMM-yyyy form.
	DueDate string `json:"dueDate"`
	// GestationalAge is the age of the pregnancy today.
	GestationalAge gestation.Age `json:"gestationalAge"`
	// Scans has one entry per scan type, ordered by start week.
	Scans []gestation.Calculation `json:"scans"`
}

// Calculation is the result of an ad hoc calculation that is not stored.
type Calculation struct {
	// LMP is the input date echoed back in yyyy-MM-dd form.
	LMP     string                  `json:"lmp"`
	DueDate string                  `json:"dueDate"`
	Scans   []gestation.Calculation `json:"scans"`
}
