package repository

import (
	"context"
	"errors"

	"thexempt/internal/database"
	"thexempt/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrUserSkillNotFound  = errors.New("skill not found")
	ErrUserSkillForbidden = errors.New("forbidden")
	ErrUserSkillExists    = errors.New("skill already exists")
)

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error)
	SkillNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
	Create(ctx context.Context, us skill.UserSkill) (skill.UserSkill, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, skill, proficiency, created_at
		 FROM user_skills
		 WHERE user_id = $1
		 ORDER BY created_at ASC, skill ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.UserSkill, 0)
	for rows.Next() {
		var us skill.UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.Name, &us.Proficiency, &us.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) SkillNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT skill FROM user_skills WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) Create(ctx context.Context, us skill.UserSkill) (skill.UserSkill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO user_skills (id, user_id, skill, proficiency)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, skill, proficiency, created_at`,
		us.ID, us.UserID, us.Name, us.Proficiency,
	)

	var created skill.UserSkill
	if err := row.Scan(&created.ID, &created.UserID, &created.Name, &created.Proficiency, &created.CreatedAt); err != nil {
		if database.IsUniqueViolation(err) {
			return skill.UserSkill{}, ErrUserSkillExists
		}
		return skill.UserSkill{}, err
	}
	return created, nil
}

func (r *PostgresUserSkillRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	var owner uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT user_id FROM user_skills WHERE id = $1`, id)
	if err := row.Scan(&owner); err != nil {
		if database.IsNoRows(err) {
			return ErrUserSkillNotFound
		}
		return err
	}
	if owner != userID {
		return ErrUserSkillForbidden
	}

	_, err := r.db.Exec(ctx, `DELETE FROM user_skills WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
