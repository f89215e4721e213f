package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
)

type applicationsRepo struct {
	db *sql.DB
}

const applicationColumns = `id, student_id, service_id, status, progress, created_at`

func scanApplication(row rowScanner) (domain.ServiceApplication, error) {
	var (
		a      domain.ServiceApplication
		status string
	)
	err := row.Scan(&a.ID, &a.StudentID, &a.ServiceID, &status, &a.Progress, &a.CreatedAt)
	if err != nil {
		return domain.ServiceApplication{}, mapNotFound(err)
	}
	a.Status = domain.ApplicationStatus(status)
	a.CreatedAt = a.CreatedAt.UTC()
	if err := store.CheckRecord(a); err != nil {
		return domain.ServiceApplication{}, err
	}
	return a, nil
}

func (r *applicationsRepo) GetApplicationByID(ctx context.Context, id string) (domain.ServiceApplication, error) {
	return scanApplication(r.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM service_applications WHERE id = ?`, id))
}

func (r *applicationsRepo) GetApplication(
	ctx context.Context,
	studentID, serviceID string,
) (domain.ServiceApplication, error) {
	return scanApplication(r.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM service_applications WHERE student_id = ? AND service_id = ?`,
		studentID, serviceID))
}

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.ServiceApplication) error {
	if err := store.CheckRecord(a); err != nil {
		return err
	}
	// A plain INSERT: a duplicate pair must fail, not replace.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO service_applications (`+applicationColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.StudentID, a.ServiceID, string(a.Status), a.Progress, a.CreatedAt.UTC(),
	)
	return mapWriteErr(err)
}

func (r *applicationsRepo) UpdateApplicationStatus(
	ctx context.Context,
	id string,
	status domain.ApplicationStatus,
) error {
	if !status.Valid() {
		return fmt.Errorf("%w: application status %q", store.ErrInvalidRecord, status)
	}
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE service_applications SET status = ? WHERE id = ?`, string(status), id))
}

func (r *applicationsRepo) ListByStudent(
	ctx context.Context,
	studentID string,
) ([]domain.ServiceApplication, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM service_applications WHERE student_id = ? ORDER BY created_at, id`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ServiceApplication{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *applicationsRepo) CountByStatus(ctx context.Context, statuses ...domain.ApplicationStatus) (int64, error) {
	if len(statuses) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(statuses)), ", ")
	args := make([]any, len(statuses))
	for i, s := range statuses {
		args[i] = string(s)
	}

	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM service_applications WHERE status IN (`+placeholders+`)`, args...).Scan(&n)
	return n, err
}
