package sqlite

import (
	"context"
	"database/sql"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
)

type studentsRepo struct {
	db *sql.DB
}

const studentColumns = `id, user_id, interested_countries, selected_services, intake, preferred_destination,
	onboarding_completed, assigned_counselor, assigned_agent, created_at`

func scanStudent(row rowScanner) (domain.StudentProfile, error) {
	var (
		s                   domain.StudentProfile
		countries, services string
		intake, destination sql.NullString
		counselor, agent    sql.NullString
	)
	err := row.Scan(
		&s.ID, &s.UserID, &countries, &services, &intake, &destination,
		&s.OnboardingCompleted, &counselor, &agent, &s.CreatedAt,
	)
	if err != nil {
		return domain.StudentProfile{}, mapNotFound(err)
	}

	if s.InterestedCountries, err = decodeList(countries); err != nil {
		return domain.StudentProfile{}, err
	}
	if s.SelectedServices, err = decodeList(services); err != nil {
		return domain.StudentProfile{}, err
	}
	s.Intake = mapNullStringPtr(intake)
	s.PreferredDestination = mapNullStringPtr(destination)
	s.AssignedCounselor = mapNullStringPtr(counselor)
	s.AssignedAgent = mapNullStringPtr(agent)
	s.CreatedAt = s.CreatedAt.UTC()
	if err := store.CheckRecord(s); err != nil {
		return domain.StudentProfile{}, err
	}
	return s, nil
}

func (r *studentsRepo) GetStudentByUserID(ctx context.Context, userID string) (domain.StudentProfile, error) {
	return scanStudent(r.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE user_id = ?`, userID))
}

func (r *studentsRepo) GetStudentByID(ctx context.Context, id string) (domain.StudentProfile, error) {
	return scanStudent(r.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = ?`, id))
}

func (r *studentsRepo) CreateStudent(ctx context.Context, s domain.StudentProfile) error {
	if err := store.CheckRecord(s); err != nil {
		return err
	}
	countries, err := encodeList(s.InterestedCountries)
	if err != nil {
		return err
	}
	services, err := encodeList(s.SelectedServices)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO students (`+studentColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, countries, services,
		mapOptionalString(s.Intake), mapOptionalString(s.PreferredDestination),
		s.OnboardingCompleted,
		mapOptionalString(s.AssignedCounselor), mapOptionalString(s.AssignedAgent),
		s.CreatedAt.UTC(),
	)
	return mapWriteErr(err)
}

func (r *studentsRepo) UpdateOnboarding(ctx context.Context, userID string, o domain.Onboarding) error {
	countries, err := encodeList(o.InterestedCountries)
	if err != nil {
		return err
	}
	services, err := encodeList(o.SelectedServices)
	if err != nil {
		return err
	}

	return expectOne(r.db.ExecContext(ctx, `
		UPDATE students
		   SET interested_countries = ?,
		       selected_services = ?,
		       intake = ?,
		       preferred_destination = ?,
		       onboarding_completed = 1
		 WHERE user_id = ?`,
		countries, services,
		mapOptionalString(o.Intake), mapOptionalString(o.PreferredDestination),
		userID,
	))
}

func (r *studentsRepo) AssignCounselor(ctx context.Context, studentID, counselorID string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE students SET assigned_counselor = ? WHERE id = ?`, counselorID, studentID))
}

func (r *studentsRepo) AssignAgent(ctx context.Context, studentID, agentID string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE students SET assigned_agent = ? WHERE id = ?`, agentID, studentID))
}

func (r *studentsRepo) ListStudents(ctx context.Context) ([]domain.StudentProfile, error) {
	return r.list(ctx, `SELECT `+studentColumns+` FROM students ORDER BY created_at, id`)
}

func (r *studentsRepo) ListByCounselor(ctx context.Context, counselorID string) ([]domain.StudentProfile, error) {
	return r.list(ctx,
		`SELECT `+studentColumns+` FROM students WHERE assigned_counselor = ? ORDER BY created_at, id`, counselorID)
}

func (r *studentsRepo) ListByAgent(ctx context.Context, agentID string) ([]domain.StudentProfile, error) {
	return r.list(ctx,
		`SELECT `+studentColumns+` FROM students WHERE assigned_agent = ? ORDER BY created_at, id`, agentID)
}

func (r *studentsRepo) list(ctx context.Context, query string, args ...any) ([]domain.StudentProfile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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
	return r.count(ctx, `SELECT COUNT(*) FROM students WHERE assigned_counselor = ?`, counselorID)
}

func (r *studentsRepo) CountByAgent(ctx context.Context, agentID string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM students WHERE assigned_agent = ?`, agentID)
}

func (r *studentsRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}
