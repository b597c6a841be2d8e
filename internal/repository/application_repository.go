package repository

import (
	"context"
	"errors"

	"thexempt/internal/database"
	"thexempt/internal/domain/application"
	"thexempt/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
)

const applicationsApplicantFK = "applications_user_id_fkey"

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) (application.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	status := a.Status
	if status == "" {
		status = application.StatusPending
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, project_id, user_id, message, match_score, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, project_id, user_id, message, match_score, status, created_at`,
		a.ID, a.ProjectID, a.ApplicantID, a.Message, a.MatchScore, string(status),
	)

	var created application.Application
	var st string
	if err := row.Scan(&created.ID, &created.ProjectID, &created.ApplicantID, &created.Message, &created.MatchScore, &st, &created.CreatedAt); err != nil {
		if database.IsUniqueViolation(err) {
			return application.Application{}, ErrApplicationExists
		}
		if database.IsForeignKeyViolation(err) {
			if database.ConstraintName(err) == applicationsApplicantFK {
				return application.Application{}, user.ErrNotFound
			}
			return application.Application{}, ErrProjectNotFound
		}
		return application.Application{}, err
	}
	created.Status = application.Status(st)
	return created, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT a.id, a.project_id, a.user_id, a.message, a.match_score, a.status, a.created_at, u.name, u.reputation_points
		 FROM applications a
		 JOIN users u ON u.id = a.user_id
		 WHERE a.id = $1`,
		id,
	)
	a, err := scanApplication(row)
	if err != nil {
		if database.IsNoRows(err) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.project_id, a.user_id, a.message, a.match_score, a.status, a.created_at, u.name, u.reputation_points
		 FROM applications a
		 JOIN users u ON u.id = a.user_id
		 WHERE a.project_id = $1
		 ORDER BY a.match_score DESC, a.created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus changes only the status column; match_score is never rewritten.
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	n, err := r.db.Exec(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var st string
	if err := row.Scan(&a.ID, &a.ProjectID, &a.ApplicantID, &a.Message, &a.MatchScore, &st, &a.CreatedAt, &a.ApplicantName, &a.ApplicantReputation); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(st)
	return a, nil
}
