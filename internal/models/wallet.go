package models

import "time"

// Supported units of account.
const (
	CurrencyBTC = "BTC"
	CurrencyUSD = "USD"
)

// Wallet is an addressable balance holder owned by exactly one user. The
// address is immutable once created; balance and currency are mutated only
// by the transaction service.
type Wallet struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Address   string    `gorm:"uniqueIndex;not null" json:"address"`
	APIKey    string    `gorm:"index;not null" json:"-"`
	Balance   float64   `gorm:"not null;default:0" json:"balance"`
	Currency  string    `gorm:"not null;default:'BTC'" json:"currency"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
