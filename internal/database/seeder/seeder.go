package seeder

import (
	"context"

	"thexempt/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
