package models

import "time"

// User maps an opaque API key to a username. The API key is the bearer
// credential for every wallet and ledger operation.
type User struct {
	ID        uint   `gorm:"primarykey"`
	Username  string `gorm:"uniqueIndex;not null"`
	APIKey    string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}
