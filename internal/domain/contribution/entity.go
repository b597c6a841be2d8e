package contribution

import (
	"time"

	"github.com/google/uuid"
)

type Contribution struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	AuthorID    uuid.UUID
	Description string
	Points      int
	CreatedAt   time.Time

	AuthorName   string
	ProjectTitle string
}
