package movementservice

import "sync"

// accountLocks hands out one mutex per account id so that concurrent
// posts against the same account serialize while movements on
// different accounts proceed in parallel. Mutexes are created lazily
// and kept for the life of the process.
type accountLocks struct {
	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[int32]*sync.Mutex)}
}

// Lock acquires the mutex of the given account and returns its unlock
// function.
func (a *accountLocks) Lock(accountID int32) func() {
	a.mu.Lock()
	l, ok := a.locks[accountID]

	if !ok {
		l = &sync.Mutex{}
		a.locks[accountID] = l
	}
	a.mu.Unlock()

	l.Lock()

	return l.Unlock
}
