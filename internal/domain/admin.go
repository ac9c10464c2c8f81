package domain

import "time"

// Admin is a dashboard operator account. Admins issue strikes, adjust hours
// and manage quota settings; their name is recorded as the strike issuer.
type Admin struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
