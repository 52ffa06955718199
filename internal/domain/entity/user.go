// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the Cash Coach system.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	Currency           string
	EmailNotifications bool
	BudgetAlerts       bool
	WeeklyDigest       bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default preferences.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		Currency:           "USD",
		EmailNotifications: true,
		BudgetAlerts:       true,
		WeeklyDigest:       true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
