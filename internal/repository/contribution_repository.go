package repository

import (
	"context"
	"errors"

	"thexempt/internal/database"
	"thexempt/internal/domain/contribution"
	"thexempt/internal/domain/reputation"
	"thexempt/internal/domain/user"

	"github.com/google/uuid"
)

// Postgres default name of the contributions.user_id foreign key.
const contributionsAuthorFK = "contributions_user_id_fkey"

// ReputationUpdate computes the profile to persist from the locked current one.
type ReputationUpdate func(current reputation.Profile) (reputation.Profile, error)

type RecordedContribution struct {
	Contribution contribution.Contribution
	Before       reputation.Profile
	After        reputation.Profile
}

type ContributionRepository interface {
	Record(ctx context.Context, c contribution.Contribution, update ReputationUpdate) (RecordedContribution, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]contribution.Contribution, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]contribution.Contribution, error)
}

type PostgresContributionRepository struct {
	db database.DB
}

func NewPostgresContributionRepository(db database.DB) *PostgresContributionRepository {
	return &PostgresContributionRepository{db: db}
}

// Record inserts c and applies update to the author's reputation in one
// transaction. The author's row is locked before it is read, so concurrent
// contributions by the same user are applied one after another.
func (r *PostgresContributionRepository) Record(ctx context.Context, c contribution.Contribution, update ReputationUpdate) (RecordedContribution, error) {
	if update == nil {
		return RecordedContribution{}, errors.New("nil reputation update")
	}

	var out RecordedContribution
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO contributions (id, project_id, user_id, description, points)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id, project_id, user_id, description, points, created_at`,
			c.ID, c.ProjectID, c.AuthorID, c.Description, c.Points,
		)
		var created contribution.Contribution
		if err := row.Scan(&created.ID, &created.ProjectID, &created.AuthorID, &created.Description, &created.Points, &created.CreatedAt); err != nil {
			if database.IsForeignKeyViolation(err) {
				if database.ConstraintName(err) == contributionsAuthorFK {
					return user.ErrNotFound
				}
				return ErrProjectNotFound
			}
			return err
		}

		var points int
		var badges []string
		row = tx.QueryRow(ctx, `SELECT reputation_points, badges FROM users WHERE id = $1 FOR UPDATE`, c.AuthorID)
		if err := row.Scan(&points, &badges); err != nil {
			if database.IsNoRows(err) {
				return user.ErrNotFound
			}
			return err
		}
		before := reputation.Profile{Points: points, Badges: reputation.ParseBadgeSet(badges)}

		after, err := update(before)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`UPDATE users SET reputation_points = $1, badges = $2, updated_at = now() WHERE id = $3`,
			after.Points, after.Badges.Strings(), c.AuthorID,
		); err != nil {
			return err
		}

		out = RecordedContribution{Contribution: created, Before: before, After: after}
		return nil
	})
	if err != nil {
		return RecordedContribution{}, err
	}
	return out, nil
}

func (r *PostgresContributionRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]contribution.Contribution, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.project_id, c.user_id, c.description, c.points, c.created_at, u.name, p.title
		 FROM contributions c
		 JOIN users u ON u.id = c.user_id
		 JOIN projects p ON p.id = c.project_id
		 WHERE c.project_id = $1
		 ORDER BY c.created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, err
	}
	return scanContributions(rows)
}

func (r *PostgresContributionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]contribution.Contribution, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.project_id, c.user_id, c.description, c.points, c.created_at, u.name, p.title
		 FROM contributions c
		 JOIN users u ON u.id = c.user_id
		 JOIN projects p ON p.id = c.project_id
		 WHERE c.user_id = $1
		 ORDER BY c.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return scanContributions(rows)
}

func scanContributions(rows database.Rows) ([]contribution.Contribution, error) {
	defer rows.Close()

	out := make([]contribution.Contribution, 0)
	for rows.Next() {
		var c contribution.Contribution
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.AuthorID, &c.Description, &c.Points, &c.CreatedAt, &c.AuthorName, &c.ProjectTitle); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
