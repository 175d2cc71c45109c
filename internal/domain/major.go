package domain

import (
	"time"

	"github.com/google/uuid"
)

// Major is a top-level academic major that clubs can be linked to.
// Name is unique; a club_majors row must reference an existing major at the
// moment it is written.
type Major struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
