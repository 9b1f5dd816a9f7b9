package transaction

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressLocks_SerializesSameAddress(t *testing.T) {
	var locks addressLocks
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lockAll("wallet-a", "wallet-b")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestAddressLocks_OverlappingPairsDoNotDeadlock(t *testing.T) {
	var locks addressLocks

	// Opposite lock orders deadlock unless acquisition is sorted.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := locks.lockAll("a", "b")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := locks.lockAll("b", "a")
			unlock()
		}()
	}
	wg.Wait()
}

func TestAddressLocks_SameAddressTwice(t *testing.T) {
	var locks addressLocks

	// Source and destination can hash to the same stripe; the duplicate
	// must be locked once or lockAll would self-deadlock.
	unlock := locks.lockAll("a", "a")
	unlock()
}
