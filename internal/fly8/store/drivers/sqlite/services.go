package sqlite

import (
	"context"
	"database/sql"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
)

type servicesRepo struct {
	db *sql.DB
}

const serviceColumns = `id, name, description, category, estimated_duration, price, icon, created_at`

func scanService(row rowScanner) (domain.Service, error) {
	var (
		s        domain.Service
		duration sql.NullString
		price    sql.NullFloat64
		icon     sql.NullString
	)
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &duration, &price, &icon, &s.CreatedAt)
	if err != nil {
		return domain.Service{}, mapNotFound(err)
	}

	s.EstimatedDuration = mapNullStringPtr(duration)
	s.Price = mapNullFloatPtr(price)
	s.Icon = mapNullStringPtr(icon)
	s.CreatedAt = s.CreatedAt.UTC()
	if err := store.CheckRecord(s); err != nil {
		return domain.Service{}, err
	}
	return s, nil
}

func (r *servicesRepo) ListServices(ctx context.Context) ([]domain.Service, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY created_at, id`)
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
	return scanService(r.db.QueryRowContext(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = ?`, id))
}

func (r *servicesRepo) CreateService(ctx context.Context, s domain.Service) error {
	if err := store.CheckRecord(s); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO services (`+serviceColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Description, s.Category,
		mapOptionalString(s.EstimatedDuration), mapOptionalFloat(s.Price), mapOptionalString(s.Icon),
		s.CreatedAt.UTC(),
	)
	return mapWriteErr(err)
}

func (r *servicesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM services)`).Scan(&exists)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
