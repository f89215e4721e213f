package postgres

import (
	"context"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type studentsRepo struct {
	pool *pgxpool.Pool
}

const studentColumns = `id, user_id, interested_countries, selected_services, intake, preferred_destination,
	onboarding_completed, assigned_counselor, assigned_agent, created_at`

func scanStudent(row pgx.Row) (domain.StudentProfile, error) {
	var s domain.StudentProfile
	err := row.Scan(
		&s.ID, &s.UserID, &s.InterestedCountries, &s.SelectedServices, &s.Intake, &s.PreferredDestination,
		&s.OnboardingCompleted, &s.AssignedCounselor, &s.AssignedAgent, &s.CreatedAt,
	)
	if err != nil {
		return domain.StudentProfile{}, mapNotFound(err)
	}
	s.InterestedCountries = nonNil(s.InterestedCountries)
	s.SelectedServices = nonNil(s.SelectedServices)
	s.CreatedAt = s.CreatedAt.UTC()
	if err := store.CheckRecord(s); err != nil {
		return domain.StudentProfile{}, err
	}
	return s, nil
}

func (r *studentsRepo) GetStudentByUserID(ctx context.Context, userID string) (domain.StudentProfile, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE user_id = $1`, userID))
}

func (r *studentsRepo) GetStudentByID(ctx context.Context, id string) (domain.StudentProfile, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

func (r *studentsRepo) CreateStudent(ctx context.Context, s domain.StudentProfile) error {
	if err := store.CheckRecord(s); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO students (`+studentColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.UserID, nonNil(s.InterestedCountries), nonNil(s.SelectedServices),
		s.Intake, s.PreferredDestination, s.OnboardingCompleted,
		s.AssignedCounselor, s.AssignedAgent, s.CreatedAt.UTC(),
	)
	return mapWriteErr(err)
}

func (r *studentsRepo) UpdateOnboarding(ctx context.Context, userID string, o domain.Onboarding) error {
	return expectOne(r.pool.Exec(ctx, `
		UPDATE students
		   SET interested_countries = $1,
		       selected_services = $2,
		       intake = $3,
		       preferred_destination = $4,
		       onboarding_completed = TRUE
		 WHERE user_id = $5`,
		nonNil(o.InterestedCountries), nonNil(o.SelectedServices),
		o.Intake, o.PreferredDestination, userID,
	))
}

func (r *studentsRepo) AssignCounselor(ctx context.Context, studentID, counselorID string) error {
	return expectOne(r.pool.Exec(ctx,
		`UPDATE students SET assigned_counselor = $1 WHERE id = $2`, counselorID, studentID))
}

func (r *studentsRepo) AssignAgent(ctx context.Context, studentID, agentID string) error {
	return expectOne(r.pool.Exec(ctx,
		`UPDATE students SET assigned_agent = $1 WHERE id = $2`, agentID, studentID))
}

func (r *studentsRepo) ListStudents(ctx context.Context) ([]domain.StudentProfile, error) {
	return r.list(ctx, `SELECT `+studentColumns+` FROM students ORDER BY created_at, id`)
}

func (r *studentsRepo) ListByCounselor(ctx context.Context, counselorID string) ([]domain.StudentProfile, error) {
	return r.list(ctx,
		`SELECT `+studentColumns+` FROM students WHERE assigned_counselor = $1 ORDER BY created_at, id`, counselorID)
}

func (r *studentsRepo) ListByAgent(ctx context.Context, agentID string) ([]domain.StudentProfile, error) {
	return r.list(ctx,
		`SELECT `+studentColumns+` FROM students WHERE assigned_agent = $1 ORDER BY created_at, id`, agentID)
}

func (r *studentsRepo) list(ctx context.Context, query string, args ...any) ([]domain.StudentProfile, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.StudentProfile{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *studentsRepo) CountStudents(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM students`)
}

func (r *studentsRepo) CountByCounselor(ctx context.Context, counselorID string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM students WHERE assigned_counselor = $1`, counselorID)
}

func (r *studentsRepo) CountByAgent(ctx context.Context, agentID string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM students WHERE assigned_agent = $1`, agentID)
}

func (r *studentsRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}
