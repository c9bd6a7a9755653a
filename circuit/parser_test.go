package circuit

import (
	"strings"
	"testing"
)

func TestParseBasicFields(t *testing.T) {
	src := strings.Join([]string{
		"// a comment",
		"",
		"name transfer",
		"input a 10",
		"input b 20",
		"sender alice",
		"receiver bob",
		"amount 5",
		"add a b c",
		"const k 7",
		"mul a k out",
		"xor a b x",
		"eq a b d",
		"hash a h",
	}, "\n")

	ir, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ir.Name != "transfer" {
		t.Errorf("Name = %q, want transfer", ir.Name)
	}
	if ir.Inputs["a"] != 10 || ir.Inputs["b"] != 20 {
		t.Errorf("Inputs = %v", ir.Inputs)
	}
	if ir.Sender != "alice" || ir.Receiver != "bob" {
		t.Errorf("sender/receiver = %s/%s", ir.Sender, ir.Receiver)
	}
	if ir.TransferAmount != 5 {
		t.Errorf("TransferAmount = %d, want 5", ir.TransferAmount)
	}
	if len(ir.Gates) != 6 {
		t.Fatalf("len(Gates) = %d, want 6", len(ir.Gates))
	}
	wantKinds := []Kind{Add, ConstGate, Mul, Xor, Eq, Hash}
	for i, k := range wantKinds {
		if ir.Gates[i].Kind != k {
			t.Errorf("Gates[%d].Kind = %v, want %v", i, ir.Gates[i].Kind, k)
		}
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("frobnicate a b"))
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	var perr *ParseError
	if !isParseError(err, &perr) {
		t.Fatalf("error is not *ParseError: %v", err)
	}
	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1", perr.Line)
	}
}

func TestParseRejectsBadInt(t *testing.T) {
	_, err := Parse(strings.NewReader("input a notanumber"))
	if err == nil {
		t.Fatal("expected error for bad integer")
	}
}

func isParseError(err error, target **ParseError) bool {
	pe, ok := err.(*ParseError)
	if ok {
		*target = pe
	}
	return ok
}
