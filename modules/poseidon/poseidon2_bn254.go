package poseidon

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Poseidon2 parameters over BN254 for a width 3 state, the ones used by
// recursion verifiers hashing 32-bit field data.
const (
	BN254x3Width         = 3
	BN254x3FullRounds    = 8
	BN254x3PartialRounds = 56
)

var (
	// BN254x3ExternalRoundConstants are added to every cell in full rounds.
	BN254x3ExternalRoundConstants [BN254x3FullRounds][BN254x3Width]fr.Element

	// BN254x3InternalRoundConstants are added to cell 0 in partial rounds.
	BN254x3InternalRoundConstants [BN254x3PartialRounds]fr.Element

	// BN254x3InternalDiagonal is diag(M_I) - 1 of the internal linear layer.
	BN254x3InternalDiagonal = [BN254x3Width]uint64{1, 1, 2}
)

func parseBN254Hex(s string) fr.Element {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("poseidon2 bn254: bad round constant " + s)
	}

	var e fr.Element
	e.SetBigInt(v)
	return e
}

func init() {
	for i := range bn254x3ExternalRoundConstantsHex {
		for j, s := range bn254x3ExternalRoundConstantsHex[i] {
			BN254x3ExternalRoundConstants[i][j] = parseBN254Hex(s)
		}
	}
	for i, s := range bn254x3InternalRoundConstantsHex {
		BN254x3InternalRoundConstants[i] = parseBN254Hex(s)
	}
}

// Poseidon2BN254 is the width 3 Poseidon2 permutation over the BN254 scalar
// field with 8 full and 56 partial rounds.
type Poseidon2BN254 struct{}

func NewPoseidon2BN254x3() Poseidon2BN254 {
	return Poseidon2BN254{}
}

func (Poseidon2BN254) Width() int {
	return BN254x3Width
}

// Rounds returns the number of full and partial rounds.
func (Poseidon2BN254) Rounds() (int, int) {
	return BN254x3FullRounds, BN254x3PartialRounds
}

// externalLinearLayer multiplies by circ(2, 1, 1).
func externalLinearLayer(state []fr.Element) {
	var sum fr.Element
	sum.Add(&state[0], &state[1]).Add(&sum, &state[2])
	for i := range state {
		state[i].Add(&state[i], &sum)
	}
}

// internalLinearLayer multiplies by 1 + diag(BN254x3InternalDiagonal).
func internalLinearLayer(state []fr.Element) {
	var sum, d fr.Element
	sum.Add(&state[0], &state[1]).Add(&sum, &state[2])
	for i := range state {
		d.SetUint64(BN254x3InternalDiagonal[i])
		state[i].Mul(&state[i], &d).Add(&state[i], &sum)
	}
}

func sBoxBN254(x *fr.Element) {
	var x2 fr.Element
	x2.Square(x)
	x2.Square(&x2)
	x.Mul(x, &x2)
}

func (Poseidon2BN254) externalRound(state []fr.Element, rc *[BN254x3Width]fr.Element) {
	for i := range state {
		state[i].Add(&state[i], &rc[i])
		sBoxBN254(&state[i])
	}
	externalLinearLayer(state)
}

func (p Poseidon2BN254) Permute(state []fr.Element) {
	if len(state) != BN254x3Width {
		panic("poseidon2 bn254 permutation over a state of wrong width")
	}

	externalLinearLayer(state)

	half := BN254x3FullRounds / 2
	for r := 0; r < half; r++ {
		p.externalRound(state, &BN254x3ExternalRoundConstants[r])
	}

	for r := 0; r < BN254x3PartialRounds; r++ {
		state[0].Add(&state[0], &BN254x3InternalRoundConstants[r])
		sBoxBN254(&state[0])
		internalLinearLayer(state)
	}

	for r := half; r < BN254x3FullRounds; r++ {
		p.externalRound(state, &BN254x3ExternalRoundConstants[r])
	}
}
