package circuit

import "testing"

func TestValidateAndExecuteTransfer(t *testing.T) {
	ir := New()
	ir.Inputs["alice"] = 10
	ir.Inputs["bob"] = 0
	ir.Sender = "alice"
	ir.Receiver = "bob"
	ir.TransferAmount = 5

	if !ir.ValidateTransfer() {
		t.Fatal("expected transfer to validate")
	}
	ir.ExecuteTransfer()
	if ir.Inputs["alice"] != 5 || ir.Inputs["bob"] != 5 {
		t.Fatalf("post-transfer balances = %v", ir.Inputs)
	}
}

func TestValidateTransferInsufficientBalance(t *testing.T) {
	ir := New()
	ir.Inputs["alice"] = 1
	ir.Sender = "alice"
	ir.TransferAmount = 5

	if ir.ValidateTransfer() {
		t.Fatal("expected transfer to be invalid")
	}
	before := ir.Inputs["alice"]
	ir.ExecuteTransfer()
	if ir.Inputs["alice"] != before {
		t.Fatal("ExecuteTransfer must not mutate an invalid transfer")
	}
}

func TestValidateTransferNoSender(t *testing.T) {
	ir := New()
	if ir.ValidateTransfer() {
		t.Fatal("expected no-sender transfer to be invalid")
	}
}
