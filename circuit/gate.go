package circuit

// Kind identifies the shape of a Gate.
type Kind int

const (
	// Add asserts A + B = C.
	Add Kind = iota
	// Sub asserts A - B = C.
	Sub
	// Mul asserts A * B = C.
	Mul
	// ConstGate asserts Name = F(Value).
	ConstGate
	// Hash asserts C = 7 * A. A linear placeholder, not an algebraic hash.
	Hash
	// Xor asserts A, B in {0,1} and C = A + B - 2*A*B.
	Xor
	// Eq asserts A = B, binding D = A - B.
	Eq
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case ConstGate:
		return "const"
	case Hash:
		return "hash"
	case Xor:
		return "xor"
	case Eq:
		return "eq"
	default:
		return "?"
	}
}

// Gate is a single operation in the circuit's gate list. Which of A, B, C,
// Name, Value are meaningful depends on Kind:
//
//	Add, Sub, Mul, Xor : A, B, C (three wire names)
//	ConstGate          : Name, Value
//	Hash               : A (input wire), C (output wire)
//	Eq                 : A, B, C (C is the bound difference wire "d")
type Gate struct {
	Kind  Kind
	A     string
	B     string
	C     string
	Name  string
	Value int32
}

// NewAdd builds an Add(a,b,c) gate.
func NewAdd(a, b, c string) Gate { return Gate{Kind: Add, A: a, B: b, C: c} }

// NewSub builds a Sub(a,b,c) gate.
func NewSub(a, b, c string) Gate { return Gate{Kind: Sub, A: a, B: b, C: c} }

// NewMul builds a Mul(a,b,c) gate.
func NewMul(a, b, c string) Gate { return Gate{Kind: Mul, A: a, B: b, C: c} }

// NewConst builds a Const(name, v) gate.
func NewConst(name string, v int32) Gate { return Gate{Kind: ConstGate, Name: name, Value: v} }

// NewHash builds a Hash(x, y) gate.
func NewHash(x, y string) Gate { return Gate{Kind: Hash, A: x, C: y} }

// NewXor builds an Xor(a,b,c) gate.
func NewXor(a, b, c string) Gate { return Gate{Kind: Xor, A: a, B: b, C: c} }

// NewEq builds an Eq(a,b,d) gate.
func NewEq(a, b, d string) Gate { return Gate{Kind: Eq, A: a, B: b, C: d} }

// XorProductWire is the name of the auxiliary product wire the R1CS
// compiler allocates for an Xor(a,b,c) gate.
func XorProductWire(a, b string) string {
	return a + "_xor_prod_" + b
}
