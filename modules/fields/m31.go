package fields

import "strconv"

const (
	// M31Modulus is the Mersenne prime 2^31 - 1.
	M31Modulus = 1<<31 - 1
	// BabyBearModulus is 15 * 2^27 + 1.
	BabyBearModulus = 15<<27 + 1
)

// M31 is an element of the Mersenne31 field. Values built by NewM31 are
// canonical, a plain conversion M31(x) may not be and is reduced on use.
type M31 uint32

// NewM31 reduces v into the Mersenne31 field.
func NewM31(v uint64) M31 {
	return M31(v % M31Modulus)
}

func (a M31) Add(b M31) M31 {
	return M31((uint64(a) + uint64(b)) % M31Modulus)
}

func (a M31) Mul(b M31) M31 {
	return M31(uint64(a) * uint64(b) % M31Modulus)
}

// Exp5 is the x^5 S-box of the Poseidon permutation over M31.
func (a M31) Exp5() M31 {
	a2 := a.Mul(a)
	return a2.Mul(a2).Mul(a)
}

func (a M31) Canonical32() uint32 {
	return uint32(a) % M31Modulus
}

func (M31) Field() Field {
	return ECCM31
}

func (a M31) String() string {
	return strconv.FormatUint(uint64(a.Canonical32()), 10)
}

// BabyBear is an element of the BabyBear field, reduced like M31. Only
// the canonical value is exposed, hashing never needs arithmetic over it.
type BabyBear uint32

// NewBabyBear reduces v into the BabyBear field.
func NewBabyBear(v uint64) BabyBear {
	return BabyBear(v % BabyBearModulus)
}

func (a BabyBear) Canonical32() uint32 {
	return uint32(a) % BabyBearModulus
}

func (BabyBear) Field() Field {
	return BabyBearField
}

func (a BabyBear) String() string {
	return strconv.FormatUint(uint64(a.Canonical32()), 10)
}
