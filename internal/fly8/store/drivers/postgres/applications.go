package postgres

import (
	"context"
	"fmt"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationsRepo struct {
	pool *pgxpool.Pool
}

const applicationColumns = `id, student_id, service_id, status, progress, created_at`

func scanApplication(row pgx.Row) (domain.ServiceApplication, error) {
	var (
		a      domain.ServiceApplication
		status string
	)
	if err := row.Scan(&a.ID, &a.StudentID, &a.ServiceID, &status, &a.Progress, &a.CreatedAt); err != nil {
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
	return scanApplication(r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM service_applications WHERE id = $1`, id))
}

func (r *applicationsRepo) GetApplication(
	ctx context.Context,
	studentID, serviceID string,
) (domain.ServiceApplication, error) {
	return scanApplication(r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM service_applications WHERE student_id = $1 AND service_id = $2`,
		studentID, serviceID))
}

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.ServiceApplication) error {
	if err := store.CheckRecord(a); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO service_applications (`+applicationColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
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
	return expectOne(r.pool.Exec(ctx,
		`UPDATE service_applications SET status = $1 WHERE id = $2`, string(status), id))
}

func (r *applicationsRepo) ListByStudent(
	ctx context.Context,
	studentID string,
) ([]domain.ServiceApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM service_applications WHERE student_id = $1 ORDER BY created_at, id`,
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
	vals := make([]string, len(statuses))
	for i, s := range statuses {
		vals[i] = string(s)
	}

	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM service_applications WHERE status = ANY($1)`, vals).Scan(&n)
	return n, err
}
