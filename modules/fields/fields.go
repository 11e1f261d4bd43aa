package fields

import (
	"math/big"

	eccFields "github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/field"
	"github.com/consensys/gnark/frontend"
)

// ECCFieldEnum is the enum value indicating the field a circuit, and the
// sponge running inside of it, is defined over.
type ECCFieldEnum uint64

// The enum assignment is aligning with the ones on ECGO side.
const (
	// ECCBN254 is the ECCFieldEnum for BN254 field
	ECCBN254 ECCFieldEnum = 2
	// ECCM31 is the ECCFieldEnum for Mersenne31 field
	ECCM31 ECCFieldEnum = 1
	// ECCGF2 is the ECCFieldEnum for Galois2 field
	ECCGF2 ECCFieldEnum = 3
)

func (f ECCFieldEnum) GetFieldEngine() eccFields.Field {
	return eccFields.GetFieldById(uint64(f))
}

// FieldModulus finds the modulus for the base field tied to the ECC field enum
func (f ECCFieldEnum) FieldModulus() *big.Int {
	fieldEngine := f.GetFieldEngine()
	return fieldEngine.Field()
}

// Order implements Field, it is the field modulus as all ECC fields are prime.
func (f ECCFieldEnum) Order() *big.Int {
	return f.FieldModulus()
}

// Bits implements Field.
func (f ECCFieldEnum) Bits() int {
	return bitsOf(f.FieldModulus())
}

func (f ECCFieldEnum) String() string {
	switch f {
	case ECCBN254:
		return "bn254"
	case ECCM31:
		return "m31"
	case ECCGF2:
		return "gf2"
	default:
		return "unknown"
	}
}

// ChallengeFieldDegree is the degree of the challenge field, that is the
// polynomial extension field of the circuit field (base field)
func (f ECCFieldEnum) ChallengeFieldDegree() uint {
	switch f {
	case ECCBN254:
		return 1
	case ECCM31:
		return 3
	case ECCGF2:
		return 128
	default:
		panic("challenge field degree asked for an unknown ecc field")
	}
}

// ArithmeticEngine pairs a frontend.API with the field the circuit is
// compiled over, so that gadgets can pick field specific parameters.
type ArithmeticEngine struct {
	ECCFieldEnum
	frontend.API
}

// AssertEq checks if a bunch of base field elements equal to each other
// assuming they are limbs of an extension field element.
func (engine *ArithmeticEngine) AssertEq(
	lhs []frontend.Variable, rhs []frontend.Variable) {

	if len(lhs) != len(rhs) {
		panic("asserting equality over limbs of different length")
	}

	for i := range lhs {
		engine.API.AssertIsEqual(lhs[i], rhs[i])
	}
}

// Zeroes returns num base field zero constants.
func (engine *ArithmeticEngine) Zeroes(num uint) []frontend.Variable {
	res := make([]frontend.Variable, num)
	for i := uint(0); i < num; i++ {
		res[i] = 0
	}
	return res
}
