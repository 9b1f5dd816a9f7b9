package memory

import "sync"

type StatisticsRepository struct {
	mu           sync.RWMutex
	transactions int64
	profit       float64
}

func NewStatisticsRepository() *StatisticsRepository {
	return &StatisticsRepository{}
}

func (r *StatisticsRepository) AddTransaction() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions++
	return nil
}

func (r *StatisticsRepository) AddPlatformProfit(amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profit += amount
	return nil
}

func (r *StatisticsRepository) GetTransactions() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transactions, nil
}

func (r *StatisticsRepository) GetPlatformProfit() (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profit, nil
}
