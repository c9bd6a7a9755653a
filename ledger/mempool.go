// Package ledger is the demo transaction-submission façade: an in-memory
// mempool and account registry sitting in front of the core pipeline,
// exposed over HTTP. None of it is part of the core; it exists to give
// submitted proofs somewhere to land for a demo.
package ledger

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zkcircuit/transfer/field"
)

// ErrMempoolFull is returned by Mempool.Add when the pool is at
// capacity.
var ErrMempoolFull = errors.New("ledger: mempool is full")

// ErrDuplicateNullifier is returned by Mempool.Add when a transaction
// with the same nullifier has already been submitted.
var ErrDuplicateNullifier = errors.New("ledger: transaction with this nullifier already exists")

// Transaction is a submitted proof awaiting confirmation.
type Transaction struct {
	ID         uuid.UUID
	OldRoot    field.Element
	NewRoot    field.Element
	Nullifier  field.Element
	Commitment field.Element
	Proof      []byte
	Timestamp  time.Time
}

// Mempool is an in-memory, reader-writer-locked set of pending
// transactions keyed by nullifier.
type Mempool struct {
	mu           sync.RWMutex
	transactions map[string]Transaction
	maxSize      int
}

// NewMempool returns an empty mempool bounded to maxSize transactions.
// A maxSize of zero or less leaves the pool unbounded.
func NewMempool(maxSize int) *Mempool {
	return &Mempool{
		transactions: make(map[string]Transaction),
		maxSize:      maxSize,
	}
}

// Add inserts tx, rejecting it if the pool is full or its nullifier is
// already present.
func (m *Mempool) Add(tx Transaction) error {
	key := formatFieldElement(tx.Nullifier)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.transactions[key]; exists {
		return ErrDuplicateNullifier
	}
	if m.maxSize > 0 && len(m.transactions) >= m.maxSize {
		return ErrMempoolFull
	}
	m.transactions[key] = tx
	return nil
}

// Remove deletes the transaction for nullifier, if present.
func (m *Mempool) Remove(nullifier field.Element) {
	key := formatFieldElement(nullifier)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.transactions, key)
}

// Get returns the transaction for nullifier, if present.
func (m *Mempool) Get(nullifier field.Element) (Transaction, bool) {
	key := formatFieldElement(nullifier)
	m.mu.RLock()
	defer m.mu.RUnlock()
	tx, ok := m.transactions[key]
	return tx, ok
}

// All returns every pending transaction, in no particular order.
func (m *Mempool) All() []Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Transaction, 0, len(m.transactions))
	for _, tx := range m.transactions {
		out = append(out, tx)
	}
	return out
}

// ClearOlderThan removes every transaction whose Timestamp is older than
// maxAge relative to now.
func (m *Mempool) ClearOlderThan(now time.Time, maxAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, tx := range m.transactions {
		if now.Sub(tx.Timestamp) > maxAge {
			delete(m.transactions, key)
		}
	}
}
