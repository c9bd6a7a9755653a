package r1cs

// varTable is the index-allocation bookkeeping used while flattening a
// circuit IR into constraints. It is idempotent by name: asking for the
// same wire name twice returns the same index.
type varTable struct {
	indices map[string]int
	next    int
}

// newVarTable returns a table with the constant-one wire pre-bound to
// index 0, as required of every R1CS variable map.
func newVarTable() *varTable {
	return &varTable{
		indices: map[string]int{"1": 0},
		next:    1,
	}
}

// indexOf returns the existing index for name, or allocates the next free
// index starting at 1.
func (t *varTable) indexOf(name string) int {
	if idx, ok := t.indices[name]; ok {
		return idx
	}
	idx := t.next
	t.indices[name] = idx
	t.next++
	return idx
}

// has reports whether name has already been allocated an index.
func (t *varTable) has(name string) bool {
	_, ok := t.indices[name]
	return ok
}

// snapshot returns a copy of the accumulated name->index map.
func (t *varTable) snapshot() map[string]int {
	out := make(map[string]int, len(t.indices))
	for k, v := range t.indices {
		out[k] = v
	}
	return out
}
