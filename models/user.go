package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	ImageKey *string `json:"-"`
	Image    *string `json:"image"`
}

// UserSummary is the public projection of a user: no email, no credentials.
type UserSummary struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Name     *string `json:"name"`
	ImageKey *string `json:"-"`
	Image    *string `json:"image"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		ImageKey: u.ImageKey,
		Image:    u.Image,
	}
}
