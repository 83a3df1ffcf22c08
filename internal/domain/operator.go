package domain

import "time"

// Operator is an internal user allowed into the leads dashboard.
type Operator struct {
	Email        string
	PasswordHash string
}

// Session represents an issued dashboard session.
type Session struct {
	ID        string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
