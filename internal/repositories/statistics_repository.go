package repositories

// StatisticsRepository holds the running platform counters.
type StatisticsRepository interface {
	AddTransaction() error
	AddPlatformProfit(amount float64) error
	GetTransactions() (int64, error)
	GetPlatformProfit() (float64, error)
}
