package seeder

import (
	"context"
	"fmt"

	"thexempt/internal/database"
	"thexempt/internal/domain/reputation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

var demoNamespace = uuid.MustParse("6f1c7a52-4a0e-4c55-9a0f-3f4f2b1d9e10")

type demoUser struct {
	Email  string
	Name   string
	Bio    string
	Points int
	Skills map[string]int
}

type demoProject struct {
	Title       string
	Description string
	Owner       string
	Skills      []string
}

var demoUsers = []demoUser{
	{
		Email: "alice@example.com", Name: "Alice Chen", Bio: "Backend engineer, loves databases.",
		Points: 520, Skills: map[string]int{"Go": 5, "PostgreSQL": 4, "Docker": 3},
	},
	{
		Email: "bob@example.com", Name: "Bob Martin", Bio: "Frontend and design systems.",
		Points: 90, Skills: map[string]int{"JavaScript": 5, "React": 4, "CSS": 4},
	},
	{
		Email: "carol@example.com", Name: "Carol Diaz", Bio: "Data and ML tinkerer.",
		Points: 0, Skills: map[string]int{"Python": 4, "SQL": 3},
	},
}

var demoProjects = []demoProject{
	{
		Title: "Open Source Task Board", Description: "A kanban board for volunteer teams.",
		Owner: "alice@example.com", Skills: []string{"Go", "PostgreSQL", "React"},
	},
	{
		Title: "Community Data Dashboard", Description: "Visualise neighbourhood open data.",
		Owner: "bob@example.com", Skills: []string{"Python", "SQL", "JavaScript"},
	},
}

// DemoUserID returns the stable id of a seeded user.
func DemoUserID(email string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte("user:"+email))
}

func demoProjectID(title string) uuid.UUID {
	return uuid.NewSHA1(demoNamespace, []byte("project:"+title))
}

// DemoSeeder inserts sample users, skills and projects. Rows that already exist
// are left alone, so it can run repeatedly.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "name", "bio", "reputation_points", "badges"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "projects", "id", "title", "description", "owner_id", "status", "required_skills"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, u := range demoUsers {
			id := DemoUserID(u.Email)
			badges := reputation.BadgesFor(u.Points).Strings()
			if _, err := tx.Exec(ctx,
				`INSERT INTO users (id, email, password_hash, name, bio, reputation_points, badges)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)
				 ON CONFLICT (email) DO NOTHING`,
				id, u.Email, string(hash), u.Name, u.Bio, u.Points, badges,
			); err != nil {
				return fmt.Errorf("user %s: %w", u.Email, err)
			}

			for name, level := range u.Skills {
				if _, err := tx.Exec(ctx,
					`INSERT INTO user_skills (id, user_id, skill, proficiency)
					 VALUES ($1, $2, $3, $4)
					 ON CONFLICT DO NOTHING`,
					uuid.NewSHA1(demoNamespace, []byte("skill:"+u.Email+":"+name)), id, name, level,
				); err != nil {
					return fmt.Errorf("skill %s for %s: %w", name, u.Email, err)
				}
			}
		}

		for _, p := range demoProjects {
			if _, err := tx.Exec(ctx,
				`INSERT INTO projects (id, title, description, owner_id, required_skills)
				 VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (id) DO NOTHING`,
				demoProjectID(p.Title), p.Title, p.Description, DemoUserID(p.Owner), p.Skills,
			); err != nil {
				return fmt.Errorf("project %s: %w", p.Title, err)
			}
		}
		return nil
	})
}
