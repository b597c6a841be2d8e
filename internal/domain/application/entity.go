package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusAccepted:
		return StatusAccepted, true
	case StatusRejected:
		return StatusRejected, true
	default:
		return "", false
	}
}

// Application is a request to join a project. MatchScore is fixed when the
// application is created.
type Application struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	ApplicantID uuid.UUID
	Message     string
	MatchScore  int
	Status      Status
	CreatedAt   time.Time

	ApplicantName       string
	ApplicantReputation int
}
