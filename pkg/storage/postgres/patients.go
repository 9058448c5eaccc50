package postgres

import (
	"context"
	"fmt"
	"sonoplan/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	profilesTable  = "profiles"
	userRolesTable = "user_roles"
)

func (p *PgSQL) StorePatient(ctx context.Context, patient domain.Patient) (*domain.Patient, error) {
	var row PgPatient
	row.FromDomain(patient)

	var stored PgPatient
	if _, err := p.Builder.Insert(profilesTable).
		Rows(row).
		Returning(&PgPatient{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store patient into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) AssignRole(ctx context.Context, userID domain.UserID, role domain.Role) error {
	_, err := p.Builder.Insert(userRolesTable).
		Rows(PgUserRole{UserID: uuid.UUID(userID), Role: string(role)}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not assign role in pg: %w", err)
	}

	return nil
}

// patientIDs selects the profile IDs holding the patient role.
func (p *PgSQL) patientIDs() *goqu.SelectDataset {
	return p.Builder.From(userRolesTable).
		Select("user_id").
		Where(goqu.I("role").Eq(string(domain.RolePatient)))
}

func (p *PgSQL) Patients(ctx context.Context, createdBy domain.UserID) ([]domain.Patient, error) {
	w := []goqu.Expression{
		goqu.I("id").In(p.patientIDs()),
	}
	if !createdBy.IsZero() {
		w = append(w, goqu.I("created_by").Eq(uuid.UUID(createdBy)))
	}

	var rows []PgPatient
	if err := p.Builder.From(profilesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch patients from pg: %w", err)
	}

	return pgPatientsToDomain(rows), nil
}

func (p *PgSQL) PatientByID(ctx context.Context, id domain.PatientID) (*domain.Patient, error) {
	var row PgPatient
	found, err := p.Builder.From(profilesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("id").In(p.patientIDs()),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch patient by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PatientCount(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(profilesTable).
		Where(goqu.I("id").In(p.patientIDs())).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count patients in pg: %w", err)
	}

	return count, nil
}
