package entity

import (
	"event-portal/core/entity"
)

// Registrant links a person, and optionally a user account, to one event.
type Registrant struct {
	EventID int64  `db:"event_id"`
	UserID  *int64 `db:"user_id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	entity.BaseEntity
}
