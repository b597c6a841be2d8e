package project

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusOpen:
		return StatusOpen, true
	case StatusClosed:
		return StatusClosed, true
	default:
		return "", false
	}
}

type Project struct {
	ID             uuid.UUID
	Title          string
	Description    string
	OwnerID        uuid.UUID
	OwnerName      string
	Status         Status
	RequiredSkills []string
	CreatedAt      time.Time
}

// CleanSkills drops blank entries and surrounding whitespace while keeping the
// authored order. Repeated names are kept.
func CleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
