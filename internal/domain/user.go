package domain

import "time"

// User is an account created on first Google login. Users are never
// deleted and, once created, never updated by this service.
type User struct {
	ID        int64
	Email     string
	Name      string
	GoogleID  string
	AvatarURL string
	CreatedAt time.Time
}
