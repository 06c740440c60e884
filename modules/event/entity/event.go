package entity

import (
	"event-portal/core/entity"
)

// Event is something visitors register for. Date is kept as entered on the
// dashboard form.
type Event struct {
	Name        string `db:"name"`
	Date        string `db:"date"`
	Venue       string `db:"venue"`
	Description string `db:"description"`
	entity.BaseEntity
}
