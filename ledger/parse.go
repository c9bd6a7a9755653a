package ledger

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/zkcircuit/transfer/field"
)

// parseFieldElement decodes a hex ("0x...") or decimal string into a
// field element, going through uint256 to accept the full range of an
// unsigned 256-bit literal before reducing into the scalar field.
func parseFieldElement(s string) (field.Element, error) {
	var u uint256.Int
	var err error
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		err = u.SetFromHex(s)
	} else {
		err = u.SetFromDecimal(s)
	}
	if err != nil {
		return field.Element{}, fmt.Errorf("ledger: invalid field element %q: %w", s, err)
	}

	var e field.Element
	e.SetBigInt(u.ToBig())
	return e, nil
}

// formatFieldElement renders a field element as a 0x-prefixed hex string.
func formatFieldElement(e field.Element) string {
	var bi big.Int
	e.BigInt(&bi)
	return uint256.MustFromBig(&bi).Hex()
}
