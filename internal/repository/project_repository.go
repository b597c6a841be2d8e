package repository

import (
	"context"
	"errors"

	"thexempt/internal/database"
	"thexempt/internal/domain/project"

	"github.com/google/uuid"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(ctx context.Context, p project.Project) (project.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	ListOpen(ctx context.Context, limit, offset int) ([]project.Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status project.Status) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectSelect = `SELECT p.id, p.title, p.description, p.owner_id, u.name, p.status, p.required_skills, p.created_at
	FROM projects p
	JOIN users u ON u.id = p.owner_id`

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	skills := p.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	status := p.Status
	if status == "" {
		status = project.StatusOpen
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO projects (id, title, description, owner_id, status, required_skills)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Title, p.Description, p.OwnerID, string(status), skills,
	)
	if err != nil {
		return project.Project{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PostgresProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx, projectSelect+` WHERE p.id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		if database.IsNoRows(err) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) ListOpen(ctx context.Context, limit, offset int) ([]project.Project, error) {
	rows, err := r.db.Query(ctx,
		projectSelect+` WHERE p.status = $1 ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`,
		string(project.StatusOpen), limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status project.Status) error {
	n, err := r.db.Exec(ctx, `UPDATE projects SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func scanProject(row database.Row) (project.Project, error) {
	var p project.Project
	var status string
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.OwnerID, &p.OwnerName, &status, &p.RequiredSkills, &p.CreatedAt); err != nil {
		return project.Project{}, err
	}
	p.Status = project.Status(status)
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
	return p, nil
}
