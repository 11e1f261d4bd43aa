// Package gadget holds the in-circuit counterparts of the native sponges, so
// that a verifier circuit recomputes exactly the digests produced natively.
package gadget

import (
	"math/big"

	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo"
	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/utils/customgates"
	"github.com/consensys/gnark/frontend"

	"github.com/mint-cash/Plonky3/modules/poseidon"
)

// Permutation is a fixed width permutation over circuit variables, applied in
// place to a state of Width() cells.
type Permutation interface {
	Width() int
	Permute(state []frontend.Variable)
}

// Poseidon2BN254 is the circuit version of poseidon.Poseidon2BN254, the width
// 3 Poseidon2 permutation over the BN254 scalar field.
type Poseidon2BN254 struct {
	api frontend.API
}

var (
	bn254x3ExternalRoundConstants [poseidon.BN254x3FullRounds][poseidon.BN254x3Width]*big.Int
	bn254x3InternalRoundConstants [poseidon.BN254x3PartialRounds]*big.Int
)

func init() {
	for i := range poseidon.BN254x3ExternalRoundConstants {
		for j := range poseidon.BN254x3ExternalRoundConstants[i] {
			bn254x3ExternalRoundConstants[i][j] = poseidon.BN254x3ExternalRoundConstants[i][j].BigInt(new(big.Int))
		}
	}
	for i := range poseidon.BN254x3InternalRoundConstants {
		bn254x3InternalRoundConstants[i] = poseidon.BN254x3InternalRoundConstants[i].BigInt(new(big.Int))
	}
}

// NewPoseidon2BN254x3 matches poseidon.NewPoseidon2BN254x3, the circuit must
// be compiled over BN254.
func NewPoseidon2BN254x3(api frontend.API) *Poseidon2BN254 {
	return &Poseidon2BN254{api: api}
}

func (p *Poseidon2BN254) Width() int {
	return poseidon.BN254x3Width
}

func (p *Poseidon2BN254) sBox(f frontend.Variable) frontend.Variable {
	f2 := p.api.Mul(f, f)
	return p.api.Mul(f2, f2, f)
}

func (p *Poseidon2BN254) externalLinearLayer(state []frontend.Variable) {
	sum := p.api.Add(state[0], state[1], state[2])
	for i := range state {
		state[i] = p.api.Add(state[i], sum)
	}
}

func (p *Poseidon2BN254) internalLinearLayer(state []frontend.Variable) {
	sum := p.api.Add(state[0], state[1], state[2])
	for i := range state {
		state[i] = p.api.Add(p.api.Mul(state[i], poseidon.BN254x3InternalDiagonal[i]), sum)
	}
}

func (p *Poseidon2BN254) externalRound(state []frontend.Variable, rc *[poseidon.BN254x3Width]*big.Int) {
	for i := range state {
		state[i] = p.sBox(p.api.Add(state[i], rc[i]))
	}
	p.externalLinearLayer(state)
}

func (p *Poseidon2BN254) Permute(state []frontend.Variable) {
	if len(state) != poseidon.BN254x3Width {
		panic("poseidon2 bn254 permutation over a state of wrong width")
	}

	p.externalLinearLayer(state)

	half := poseidon.BN254x3FullRounds / 2
	for r := 0; r < half; r++ {
		p.externalRound(state, &bn254x3ExternalRoundConstants[r])
	}

	for r := 0; r < poseidon.BN254x3PartialRounds; r++ {
		state[0] = p.sBox(p.api.Add(state[0], bn254x3InternalRoundConstants[r]))
		p.internalLinearLayer(state)
	}

	for r := half; r < poseidon.BN254x3FullRounds; r++ {
		p.externalRound(state, &bn254x3ExternalRoundConstants[r])
	}
}

var (
	POW_5_GATE_ID     uint64 = 12345
	POW_5_COST_PSEUDO int    = 20
)

// Power5 is the hint behind the pow-5 custom gate.
func Power5(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	a := big.NewInt(0)
	a.Mul(inputs[0], inputs[0])
	a.Mul(a, a)
	a.Mul(a, inputs[0])
	outputs[0] = a.Mod(a, field)
	return nil
}

func init() {
	// NOTE register pow-5 gate
	customgates.Register(POW_5_GATE_ID, Power5, POW_5_COST_PSEUDO)
}

// PoseidonM31x16 is the circuit version of poseidon.PoseidonM31x16, the
// circuit must be compiled over Mersenne31.
type PoseidonM31x16 struct {
	api frontend.API
}

func NewPoseidonM31x16(api frontend.API) *PoseidonM31x16 {
	return &PoseidonM31x16{api: api}
}

func (p *PoseidonM31x16) Width() int {
	return poseidon.M31x16Width
}

// sBox goes through the ECC custom gate when the circuit is compiled by ecgo,
// and falls back to plain multiplications for other builders.
func (p *PoseidonM31x16) sBox(f frontend.Variable) frontend.Variable {
	if api, ok := p.api.(ecgo.API); ok {
		return api.CustomGate(POW_5_GATE_ID, f)
	}

	f2 := p.api.Mul(f, f)
	return p.api.Mul(f2, f2, f)
}

func (p *PoseidonM31x16) mdsApply(state []frontend.Variable) {
	res := make([]frontend.Variable, poseidon.M31x16Width)
	for i := range res {
		res[i] = 0
	}

	for i := 0; i < poseidon.M31x16Width; i++ {
		for j := 0; j < poseidon.M31x16Width; j++ {
			res[i] = p.api.Add(p.api.Mul(uint64(poseidon.M31x16MDS[i][j]), state[j]), res[i])
		}
	}

	copy(state, res)
}

func (p *PoseidonM31x16) Permute(state []frontend.Variable) {
	if len(state) != poseidon.M31x16Width {
		panic("poseidon m31x16 permutation over a state of wrong width")
	}

	partialRoundEnds := poseidon.M31x16FullRounds/2 + poseidon.M31x16PartialRounds
	allRoundEnds := poseidon.M31x16FullRounds + poseidon.M31x16PartialRounds

	for round := 0; round < allRoundEnds; round++ {
		for i := range state {
			state[i] = p.api.Add(state[i], uint64(poseidon.M31x16RoundConstants[round][i]))
		}

		p.mdsApply(state)

		if round < poseidon.M31x16FullRounds/2 || round >= partialRoundEnds {
			for i := range state {
				state[i] = p.sBox(state[i])
			}
		} else {
			state[0] = p.sBox(state[0])
		}
	}
}
