package postgres

import (
	"context"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type servicesRepo struct {
	pool *pgxpool.Pool
}

const serviceColumns = `id, name, description, category, estimated_duration, price, icon, created_at`

func scanService(row pgx.Row) (domain.Service, error) {
	var s domain.Service
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.EstimatedDuration, &s.Price, &s.Icon, &s.CreatedAt)
	if err != nil {
		return domain.Service{}, mapNotFound(err)
	}
	s.CreatedAt = s.CreatedAt.UTC()
	if err := store.CheckRecord(s); err != nil {
		return domain.Service{}, err
	}
	return s, nil
}

func (r *servicesRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *servicesRepo) GetServiceByID(ctx context.Context, id string) (domain.Service, error) {
	return scanService(r.pool.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
}

func (r *servicesRepo) CreateService(ctx context.Context, s domain.Service) error {
	if err := store.CheckRecord(s); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO services (`+serviceColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.Name, s.Description, s.Category, s.EstimatedDuration, s.Price, s.Icon, s.CreatedAt.UTC(),
	)
	return mapWriteErr(err)
}

func (r *servicesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM services)`).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}
