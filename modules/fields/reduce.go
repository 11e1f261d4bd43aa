package fields

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// DigitBase is the radix used when folding 32-bit field elements into a
// larger field element.
const DigitBase = uint64(1) << 32

// Reduce32BN254 folds digits into a single BN254 scalar, reading them as
// little-endian base 2^32 digits: digits[0] + digits[1]*2^32 + ... mod r.
func Reduce32BN254[F Canonical32](digits []F) fr.Element {
	var base, digit, res fr.Element
	base.SetUint64(DigitBase)

	for i := len(digits) - 1; i >= 0; i-- {
		digit.SetUint64(uint64(digits[i].Canonical32()))
		res.Mul(&res, &base)
		res.Add(&res, &digit)
	}

	return res
}
