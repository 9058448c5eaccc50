package postgres

import (
	"database/sql"
	"sonoplan/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgPatient is a row of the profiles table.
type PgPatient struct {
	ID        uuid.UUID      `db:"id"         goqu:"skipinsert"`
	FullName  string         `db:"full_name"`
	Phone     sql.NullString `db:"phone"`
	CreatedBy uuid.NullUUID  `db:"created_by"`
	CreatedAt time.Time      `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time      `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPatient) ToDomain() *domain.Patient {
	return &domain.Patient{
		ID:        domain.PatientID(p.ID),
		FullName:  p.FullName,
		Phone:     p.Phone.String,
		CreatedBy: domain.UserID(p.CreatedBy.UUID),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (p *PgPatient) FromDomain(patient domain.Patient) {
	*p = PgPatient{
		ID:        uuid.UUID(patient.ID),
		FullName:  patient.FullName,
		Phone:     sql.NullString{String: patient.Phone, Valid: patient.Phone != ""},
		CreatedBy: nullUserID(patient.CreatedBy),
		CreatedAt: patient.CreatedAt,
		UpdatedAt: patient.UpdatedAt,
	}
}

// PgUserRole is a row of the user_roles table.
type PgUserRole struct {
	UserID uuid.UUID `db:"user_id"`
	Role   string    `db:"role"`
}

// PgSchedule is a row of the patient_scans table.
type PgSchedule struct {
	ID           uuid.UUID     `db:"id"            goqu:"skipinsert"`
	PatientID    uuid.UUID     `db:"patient_id"`
	LMPDate      time.Time     `db:"lmp_date"`
	EDDDate      time.Time     `db:"edd_date"`
	AUAWeeks     sql.NullInt32 `db:"aua_weeks"`
	CorrectedLMP sql.NullTime  `db:"corrected_lmp"`
	CreatedBy    uuid.NullUUID `db:"created_by"`
	CreatedAt    time.Time     `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    time.Time     `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgSchedule) ToDomain() *domain.Schedule {
	s := &domain.Schedule{
		ID:        domain.ScheduleID(p.ID),
		PatientID: domain.PatientID(p.PatientID),
		LMPDate:   asDate(p.LMPDate),
		EDDDate:   asDate(p.EDDDate),
		CreatedBy: domain.UserID(p.CreatedBy.UUID),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.AUAWeeks.Valid {
		weeks := int(p.AUAWeeks.Int32)
		s.AUAWeeks = &weeks
	}
	if p.CorrectedLMP.Valid {
		corrected := asDate(p.CorrectedLMP.Time)
		s.CorrectedLMP = &corrected
	}

	return s
}

func (p *PgSchedule) FromDomain(schedule domain.Schedule) {
	*p = PgSchedule{
		ID:           uuid.UUID(schedule.ID),
		PatientID:    uuid.UUID(schedule.PatientID),
		LMPDate:      schedule.LMPDate,
		EDDDate:      schedule.EDDDate,
		AUAWeeks:     nullInt(schedule.AUAWeeks),
		CorrectedLMP: nullTime(schedule.CorrectedLMP),
		CreatedBy:    nullUserID(schedule.CreatedBy),
		CreatedAt:    schedule.CreatedAt,
		UpdatedAt:    schedule.UpdatedAt,
	}
}

// PgScanType is a row of the scan_types table.
type PgScanType struct {
	ID             uuid.UUID     `db:"id"               goqu:"skipinsert"`
	Name           string        `db:"name"`
	WeekRangeStart int           `db:"week_range_start"`
	WeekRangeEnd   int           `db:"week_range_end"`
	IsDefault      bool          `db:"is_default"`
	CreatedBy      uuid.NullUUID `db:"created_by"`
	CreatedAt      time.Time     `db:"created_at"       goqu:"skipinsert"`
}

func (p *PgScanType) ToDomain() *domain.ScanType {
	return &domain.ScanType{
		ID:             domain.ScanTypeID(p.ID),
		Name:           p.Name,
		WeekRangeStart: p.WeekRangeStart,
		WeekRangeEnd:   p.WeekRangeEnd,
		IsDefault:      p.IsDefault,
		CreatedBy:      domain.UserID(p.CreatedBy.UUID),
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgScanType) FromDomain(scanType domain.ScanType) {
	*p = PgScanType{
		ID:             uuid.UUID(scanType.ID),
		Name:           scanType.Name,
		WeekRangeStart: scanType.WeekRangeStart,
		WeekRangeEnd:   scanType.WeekRangeEnd,
		IsDefault:      scanType.IsDefault,
		CreatedBy:      nullUserID(scanType.CreatedBy),
		CreatedAt:      scanType.CreatedAt,
	}
}

// PgReminder is a row of the reminders table.
type PgReminder struct {
	ID            uuid.UUID     `db:"id"              goqu:"skipinsert"`
	PatientScanID uuid.UUID     `db:"patient_scan_id"`
	ScanTypeID    uuid.UUID     `db:"scan_type_id"`
	ReminderDate  time.Time     `db:"reminder_date"`
	Message       string        `db:"message"`
	SentAt        sql.NullTime  `db:"sent_at"`
	SentBy        uuid.NullUUID `db:"sent_by"`
	CreatedAt     time.Time     `db:"created_at"      goqu:"skipinsert"`
}

func (p *PgReminder) ToDomain() *domain.Reminder {
	return &domain.Reminder{
		ID:           domain.ReminderID(p.ID),
		ScheduleID:   domain.ScheduleID(p.PatientScanID),
		ScanTypeID:   domain.ScanTypeID(p.ScanTypeID),
		ReminderDate: asDate(p.ReminderDate),
		Message:      p.Message,
		SentAt:       p.SentAt.Time,
		SentBy:       domain.UserID(p.SentBy.UUID),
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgReminder) FromDomain(reminder domain.Reminder) {
	*p = PgReminder{
		ID:            uuid.UUID(reminder.ID),
		PatientScanID: uuid.UUID(reminder.ScheduleID),
		ScanTypeID:    uuid.UUID(reminder.ScanTypeID),
		ReminderDate:  reminder.ReminderDate,
		Message:       reminder.Message,
		SentAt:        sql.NullTime{Time: reminder.SentAt, Valid: !reminder.SentAt.IsZero()},
		SentBy:        nullUserID(reminder.SentBy),
		CreatedAt:     reminder.CreatedAt,
	}
}

func pgPatientsToDomain(rows []PgPatient) []domain.Patient {
	out := make([]domain.Patient, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgSchedulesToDomain(rows []PgSchedule) []domain.Schedule {
	out := make([]domain.Schedule, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgScanTypesToDomain(rows []PgScanType) []domain.ScanType {
	out := make([]domain.ScanType, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgRemindersToDomain(rows []PgReminder) []domain.Reminder {
	out := make([]domain.Reminder, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

// asDate keeps the calendar day of a DATE column as midnight UTC, whatever
// location the driver decoded it in.
func asDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nullUserID(id domain.UserID) uuid.NullUUID {
	return uuid.NullUUID{UUID: uuid.UUID(id), Valid: !id.IsZero()}
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}

	return sql.NullInt32{Int32: int32(*v), Valid: true} //nolint: gosec
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *v, Valid: true}
}
