package ledger

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"sync"

	"github.com/zkcircuit/transfer/field"
)

// AccountRegistry tracks confirmed nullifiers (preventing double-spends)
// and a running commitment root, guarded by its own reader-writer lock
// independent of the mempool's.
type AccountRegistry struct {
	mu          sync.RWMutex
	nullifiers  map[string]bool
	commitments map[string]field.Element
	root        [32]byte
}

// NewAccountRegistry returns an empty registry.
func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{
		nullifiers:  make(map[string]bool),
		commitments: make(map[string]field.Element),
	}
}

// IsSpent reports whether nullifier has already been confirmed.
func (a *AccountRegistry) IsSpent(nullifier field.Element) bool {
	key := formatFieldElement(nullifier)
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.nullifiers[key]
}

// Confirm marks nullifier as spent and folds commitment into the
// registry's root. Returns an error if the nullifier was already spent.
func (a *AccountRegistry) Confirm(nullifier, commitment field.Element) error {
	key := formatFieldElement(nullifier)

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.nullifiers[key] {
		return fmt.Errorf("ledger: nullifier %s already spent", key)
	}
	a.nullifiers[key] = true
	a.commitments[formatFieldElement(commitment)] = commitment
	a.root = recomputeRoot(a.commitments)
	return nil
}

// Root returns the current commitment root.
func (a *AccountRegistry) Root() [32]byte {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.root
}

// recomputeRoot hashes the sorted hex encodings of every known
// commitment. Not a Merkle tree — a simple, deterministic running
// digest sufficient for the demo façade's read-only "root" concept.
func recomputeRoot(commitments map[string]field.Element) [32]byte {
	keys := make([]string, 0, len(commitments))
	for k := range commitments {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
