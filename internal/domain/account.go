package domain

import "time"

// Account represents a registered storefront user. The password hash is
// opaque to everything above the hasher and never serialized.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
