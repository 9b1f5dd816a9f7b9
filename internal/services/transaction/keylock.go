package transaction

import (
	"hash/fnv"
	"sort"
	"sync"
)

const lockStripes = 64

// addressLocks serializes balance mutation per wallet address. The backing
// stores perform read-then-write balance updates, so two concurrent
// transfers out of one wallet would otherwise both read the same starting
// balance and double-debit.
type addressLocks struct {
	stripes [lockStripes]sync.Mutex
}

// lockAll acquires the stripes covering the given addresses in ascending
// index order, so overlapping transfers cannot deadlock. The returned
// function releases them in reverse order.
func (l *addressLocks) lockAll(addresses ...string) func() {
	indices := make([]int, 0, len(addresses))
	for _, address := range addresses {
		indices = append(indices, stripeIndex(address))
	}
	sort.Ints(indices)

	locked := make([]int, 0, len(indices))
	last := -1
	for _, idx := range indices {
		if idx == last {
			continue
		}
		l.stripes[idx].Lock()
		locked = append(locked, idx)
		last = idx
	}

	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			l.stripes[locked[i]].Unlock()
		}
	}
}

func stripeIndex(address string) int {
	h := fnv.New32a()
	h.Write([]byte(address))
	return int(h.Sum32() % lockStripes)
}
