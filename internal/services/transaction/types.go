package transaction

import (
	"time"

	"custodia/internal/models"

	"github.com/google/uuid"
)

// LedgerWrite is the outcome of one transfer: the main entry, plus a fee
// entry to the system wallet when the platform took a cut. Modeling the
// conditional write explicitly keeps it testable in isolation.
type LedgerWrite struct {
	Main models.TransactionEntry
	Fee  *models.TransactionEntry
}

// newLedgerWrite builds the entries for a transfer that deposited deposit
// into destination and retained fee for the platform.
func newLedgerWrite(source, destination string, deposit, fee float64, systemWallet string) LedgerWrite {
	now := time.Now().UTC()
	write := LedgerWrite{
		Main: models.TransactionEntry{
			EntryID:            uuid.NewString(),
			SourceAddress:      source,
			DestinationAddress: destination,
			Amount:             deposit,
			Timestamp:          now,
		},
	}
	if fee != 0 {
		write.Fee = &models.TransactionEntry{
			EntryID:            uuid.NewString(),
			SourceAddress:      source,
			DestinationAddress: systemWallet,
			Amount:             fee,
			Timestamp:          now,
		}
	}
	return write
}

// splitAmount computes the deposit-side fee split. The full amount leaves
// the source; the destination receives amount*(100-feePercent)/100 and the
// remainder is platform fee. The order of operations is fixed for
// reproducibility.
func splitAmount(amount, feePercent float64) (deposit, fee float64) {
	deposit = amount * (100 - feePercent) / 100
	fee = amount - deposit
	return deposit, fee
}
