package model

import (
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldName     = "name"
	FieldPassword = "password_hash"
	FieldRole     = "role"
	FieldActive   = "active"
)

// User is an admin dashboard account. The public booking flow never touches
// this table.
type User struct {
	ID           string `db:"id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	Active       bool   `db:"active"`
	model.Metadata
}
