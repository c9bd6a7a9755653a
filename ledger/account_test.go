package ledger

import "testing"

func TestAccountRegistryConfirmAndIsSpent(t *testing.T) {
	a := NewAccountRegistry()
	nullifier := mustParse(t, "0xaa")
	commitment := mustParse(t, "0xbb")

	if a.IsSpent(nullifier) {
		t.Fatal("unconfirmed nullifier reported as spent")
	}

	if err := a.Confirm(nullifier, commitment); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !a.IsSpent(nullifier) {
		t.Fatal("expected nullifier to be spent after Confirm")
	}
}

func TestAccountRegistryRejectsDoubleSpend(t *testing.T) {
	a := NewAccountRegistry()
	nullifier := mustParse(t, "0xcc")
	commitment := mustParse(t, "0xdd")

	if err := a.Confirm(nullifier, commitment); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if err := a.Confirm(nullifier, commitment); err == nil {
		t.Fatal("expected second Confirm of the same nullifier to fail")
	}
}

func TestAccountRegistryRootChangesWithCommitments(t *testing.T) {
	a := NewAccountRegistry()
	before := a.Root()

	if err := a.Confirm(mustParse(t, "0x1"), mustParse(t, "0x2")); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	after := a.Root()

	if before == after {
		t.Fatal("expected root to change after confirming a commitment")
	}
}

func TestAccountRegistryRootDeterministic(t *testing.T) {
	a1 := NewAccountRegistry()
	a2 := NewAccountRegistry()

	if err := a1.Confirm(mustParse(t, "0x1"), mustParse(t, "0x10")); err != nil {
		t.Fatalf("a1.Confirm: %v", err)
	}
	if err := a1.Confirm(mustParse(t, "0x2"), mustParse(t, "0x20")); err != nil {
		t.Fatalf("a1.Confirm: %v", err)
	}

	if err := a2.Confirm(mustParse(t, "0x2"), mustParse(t, "0x20")); err != nil {
		t.Fatalf("a2.Confirm: %v", err)
	}
	if err := a2.Confirm(mustParse(t, "0x1"), mustParse(t, "0x10")); err != nil {
		t.Fatalf("a2.Confirm: %v", err)
	}

	if a1.Root() != a2.Root() {
		t.Fatal("expected root to be independent of confirmation order")
	}
}
