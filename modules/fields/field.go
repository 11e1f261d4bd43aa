package fields

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Field describes a prime field by its cardinality and the number of bits
// needed to write down any of its elements.
type Field interface {
	Order() *big.Int
	Bits() int
}

// Canonical32 is implemented by elements of a prime field whose order fits in
// 32 bits. Canonical32 returns the representative in [0, order), and Field
// describes the field, it must not depend on the receiver value.
type Canonical32 interface {
	Canonical32() uint32
	Field() Field
}

// PrimeField is a plain Field descriptor for fields not known to ECGO.
type PrimeField struct {
	Name    string
	Modulus *big.Int
}

func (f PrimeField) Order() *big.Int {
	return new(big.Int).Set(f.Modulus)
}

func (f PrimeField) Bits() int {
	return bitsOf(f.Modulus)
}

type bn254Fr struct{}

func (bn254Fr) Order() *big.Int {
	return fr.Modulus()
}

func (bn254Fr) Bits() int {
	return fr.Bits
}

var (
	// BabyBearField is the field of order 15 * 2^27 + 1.
	BabyBearField Field = PrimeField{Name: "babybear", Modulus: big.NewInt(BabyBearModulus)}

	// BN254Fr is the BN254 scalar field as seen by gnark-crypto.
	BN254Fr Field = bn254Fr{}
)

// bitsOf returns the bit length of order - 1, the largest element.
func bitsOf(order *big.Int) int {
	return new(big.Int).Sub(order, big.NewInt(1)).BitLen()
}
