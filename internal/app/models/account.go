package models

// Account permission bits
const (
	PermUser  = 0b01
	PermAdmin = 0b10
)

// Account defines the account model based on the 'accounts' table
type Account struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Name         string `json:"name" db:"name" example:"Jane Doe"`
	Email        string `json:"email" db:"email" example:"jane@example.com"` // Unique
	PasswordHash string `json:"-" db:"password_hash"`                        // Excluded from JSON
	About        string `json:"about" db:"about"`
	Permissions  int    `json:"permissions" db:"permissions" example:"1"` // Bitmask: bit0=user, bit1=admin
}

// IsAdmin reports whether the account carries the admin permission bit
func (a *Account) IsAdmin() bool {
	return a.Permissions&PermAdmin != 0
}
