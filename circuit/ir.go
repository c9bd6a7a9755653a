// Package circuit holds the in-memory representation of a parsed circuit
// description: its declared wires, its ordered gate list, and the transfer
// metadata the R1CS compiler's preamble constraints are built from.
package circuit

// IR is the in-memory circuit description produced by Parse. It is
// read-only once handed to the R1CS compiler, except for the advisory
// ExecuteTransfer helper which may be called beforehand.
type IR struct {
	Name           string
	Inputs         map[string]int32
	Outputs        map[string]int32
	Gates          []Gate
	Sender         string
	Receiver       string
	TransferAmount int32
}

// New returns an empty IR ready to be populated by the parser.
func New() *IR {
	return &IR{
		Inputs:  make(map[string]int32),
		Outputs: make(map[string]int32),
	}
}

// HasSender reports whether a sender wire was declared and is present
// among the declared inputs.
func (c *IR) HasSender() bool {
	if c.Sender == "" {
		return false
	}
	_, ok := c.Inputs[c.Sender]
	return ok
}

// HasReceiver reports whether a receiver wire was declared and is present
// among the declared inputs.
func (c *IR) HasReceiver() bool {
	if c.Receiver == "" {
		return false
	}
	_, ok := c.Inputs[c.Receiver]
	return ok
}

// ValidateTransfer reports whether the sender's declared balance covers
// the transfer amount. False if no sender is declared.
func (c *IR) ValidateTransfer() bool {
	if !c.HasSender() {
		return false
	}
	return c.Inputs[c.Sender] >= c.TransferAmount
}

// ExecuteTransfer applies the transfer to the declared inputs in place,
// if valid. It is advisory only. No copy of the original balances is
// kept: r1cs.ToR1CS and witness.Compute read Inputs as they stand when
// they are called, so running them after ExecuteTransfer makes them see
// the post-transfer balances.
func (c *IR) ExecuteTransfer() {
	if !c.ValidateTransfer() {
		return
	}
	if c.HasSender() {
		c.Inputs[c.Sender] -= c.TransferAmount
	}
	if c.HasReceiver() {
		c.Inputs[c.Receiver] += c.TransferAmount
	}
}
