package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a learner. Identity comes from the bearer token subject.
type User struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
