package entity

import (
	"event-portal/core/entity"
)

// User is a self-registered account. FullName and Phone are filled from the
// registration form or from the first event registration.
type User struct {
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	FullName     *string `db:"full_name"`
	Phone        *string `db:"phone"`
	entity.BaseEntity
}
