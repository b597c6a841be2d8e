package usecase

import "github.com/google/uuid"

const (
	EventApplicationReceived      = "application_received"
	EventApplicationStatusChanged = "application_status_changed"
	EventBadgesAwarded            = "badges_awarded"
)

// Notifier pushes an event to every live connection of a user. Delivery is
// best effort.
type Notifier interface {
	Notify(userID uuid.UUID, eventType string, payload any)
}

type noopNotifier struct{}

func (noopNotifier) Notify(uuid.UUID, string, any) {}
