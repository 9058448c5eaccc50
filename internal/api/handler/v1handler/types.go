package v1handler

import (
	"sonoplan/internal/schedule"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/gestation"
	"time"
)

type CreatePatientRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type CreateScheduleRequest struct {
	PatientID    domain.PatientID `json:"patientId"`
	LMPDate      string           `json:"lmpDate"`
	AUAWeeks     *int             `json:"auaWeeks"`
	CorrectedLMP string           `json:"correctedLmp"`
}

type UpdateScheduleRequest struct {
	LMPDate      string `json:"lmpDate"`
	AUAWeeks     *int   `json:"auaWeeks"`
	CorrectedLMP string `json:"correctedLmp"`
}

type RescheduleRequest struct {
	LMPDate string `json:"lmpDate"`
}

type CreateScanTypeRequest struct {
	Name           string `json:"name"`
	WeekRangeStart int    `json:"weekRangeStart"`
	WeekRangeEnd   int    `json:"weekRangeEnd"`
}

// ScanDefinition is an ad hoc scan window sent to the calculator.
type ScanDefinition struct {
	Name           string `json:"name"`
	WeekRangeStart int    `json:"weekRangeStart"`
	WeekRangeEnd   int    `json:"weekRangeEnd"`
}

type CalculateRequest struct {
	LMPDate string `json:"lmpDate"`
	// ScanTypes defaults to the configured scan types when empty.
	ScanTypes []ScanDefinition `json:"scanTypes"`
}

// Schedule is the wire form of a schedule. Stored dates are yyyy-MM-dd.
type Schedule struct {
	ID           domain.ScheduleID `json:"id"`
	PatientID    domain.PatientID  `json:"patientId"`
	LMPDate      string            `json:"lmpDate"`
	EDDDate      string            `json:"eddDate"`
	AUAWeeks     *int              `json:"auaWeeks,omitempty"`
	CorrectedLMP *string           `json:"correctedLmp,omitempty"`
	CreatedBy    *domain.UserID    `json:"createdBy,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type Patient struct {
	ID        domain.PatientID `json:"id"`
	FullName  string           `json:"fullName"`
	Phone     string           `json:"phone,omitempty"`
	CreatedBy *domain.UserID   `json:"createdBy,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type ScanType struct {
	ID             domain.ScanTypeID `json:"id"`
	Name           string            `json:"name"`
	WeekRangeStart int               `json:"weekRangeStart"`
	WeekRangeEnd   int               `json:"weekRangeEnd"`
	IsDefault      bool              `json:"isDefault"`
	CreatedBy      *domain.UserID    `json:"createdBy,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

type Plan struct {
	Schedule       Schedule                `json:"schedule"`
	DueDate        string                  `json:"dueDate"`
	GestationalAge gestation.Age           `json:"gestationalAge"`
	Scans          []gestation.Calculation `json:"scans"`
}

type List[T any] struct {
	Items []T `json:"items"`
}

func optionalUser(id domain.UserID) *domain.UserID {
	if id.IsZero() {
		return nil
	}

	return &id
}

func DomainScheduleToV1(in *domain.Schedule) Schedule {
	out := Schedule{
		ID:        in.ID,
		PatientID: in.PatientID,
		LMPDate:   gestation.FormatISODate(in.LMPDate),
		EDDDate:   gestation.FormatISODate(in.EDDDate),
		AUAWeeks:  in.AUAWeeks,
		CreatedBy: optionalUser(in.CreatedBy),
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
	if in.CorrectedLMP != nil {
		corrected := gestation.FormatISODate(*in.CorrectedLMP)
		out.CorrectedLMP = &corrected
	}

	return out
}

func DomainPatientToV1(in *domain.Patient) Patient {
	return Patient{
		ID:        in.ID,
		FullName:  in.FullName,
		Phone:     in.Phone,
		CreatedBy: optionalUser(in.CreatedBy),
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

func DomainScanTypeToV1(in *domain.ScanType) ScanType {
	return ScanType{
		ID:             in.ID,
		Name:           in.Name,
		WeekRangeStart: in.WeekRangeStart,
		WeekRangeEnd:   in.WeekRangeEnd,
		IsDefault:      in.IsDefault,
		CreatedBy:      optionalUser(in.CreatedBy),
		CreatedAt:      in.CreatedAt,
	}
}

func PlanToV1(in *schedule.Plan) Plan {
	return Plan{
		Schedule:       DomainScheduleToV1(&in.Schedule),
		DueDate:        in.DueDate,
		GestationalAge: in.GestationalAge,
		Scans:          in.Scans,
	}
}

func mapSlice[In, Out any](in []In, fn func(*In) Out) []Out {
	out := make([]Out, 0, len(in))
	for i := range in {
		out = append(out, fn(&in[i]))
	}

	return out
}
