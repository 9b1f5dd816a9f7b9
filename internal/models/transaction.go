package models

import "time"

// TransactionEntry is one immutable leg of value movement. Amount is the
// amount actually deposited (post-fee). The same logical entry is indexed
// under both participant wallets, so EntryID is stable when read from
// either side.
type TransactionEntry struct {
	ID                 uint      `gorm:"primarykey" json:"-"`
	EntryID            string    `gorm:"index;not null" json:"id"`
	AssociatedWallet   string    `gorm:"index;not null" json:"-"`
	AssociatedAPIKey   string    `gorm:"index;not null" json:"-"`
	SourceAddress      string    `gorm:"not null" json:"source_address"`
	DestinationAddress string    `gorm:"not null" json:"destination_address"`
	Amount             float64   `gorm:"not null" json:"amount"`
	Timestamp          time.Time `gorm:"not null" json:"timestamp"`
}
