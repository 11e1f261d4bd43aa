package poseidon

import (
	"encoding/binary"

	"github.com/mint-cash/Plonky3/modules/fields"
	"golang.org/x/crypto/sha3"
)

const (
	// M31x16Width is the state width of the Poseidon permutation over M31.
	M31x16Width = 16

	M31x16FullRounds    = 8
	M31x16PartialRounds = 14

	m31x16Seed = "poseidon_seed_Mersenne 31_16"
)

var (
	// M31x16RoundConstants holds one row of constants per round, derived from
	// a Keccak-256 chain over the seed.
	M31x16RoundConstants [M31x16FullRounds + M31x16PartialRounds][M31x16Width]fields.M31

	// M31x16MDS is the circulant MDS matrix of the permutation.
	M31x16MDS [M31x16Width][M31x16Width]fields.M31
)

func poseidonM31x16Init() {
	// NOTE Poseidon round constant generation, every constant re-hashes the
	// running seed and keeps its first 4 bytes little endian
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(m31x16Seed))
	seed := hasher.Sum(nil)

	for i := range M31x16RoundConstants {
		for j := 0; j < M31x16Width; j++ {
			hasher.Reset()
			hasher.Write(seed)
			seed = hasher.Sum(nil)

			u32LE := binary.LittleEndian.Uint32(seed[:4])
			M31x16RoundConstants[i][j] = fields.NewM31(uint64(u32LE))
		}
	}

	// NOTE MDS generation
	firstRow := [M31x16Width]uint64{1, 1, 51, 1, 11, 17, 2, 1, 101, 63, 15, 2, 67, 22, 13, 3}
	for i := 0; i < M31x16Width; i++ {
		for j := 0; j < M31x16Width; j++ {
			M31x16MDS[i][j] = fields.NewM31(firstRow[(i+j)%M31x16Width])
		}
	}
}

func init() {
	poseidonM31x16Init()
}

// PoseidonM31x16 is the width 16 Poseidon permutation over Mersenne31. Every
// round adds the round constants, applies the MDS matrix, then the x^5 S-box
// to all cells in full rounds and to cell 0 in partial rounds.
type PoseidonM31x16 struct{}

func NewPoseidonM31x16() PoseidonM31x16 {
	return PoseidonM31x16{}
}

func (PoseidonM31x16) Width() int {
	return M31x16Width
}

func (PoseidonM31x16) Permute(state []fields.M31) {
	if len(state) != M31x16Width {
		panic("poseidon m31x16 permutation over a state of wrong width")
	}

	partialRoundEnds := M31x16FullRounds/2 + M31x16PartialRounds
	allRoundEnds := M31x16FullRounds + M31x16PartialRounds

	var scratch [M31x16Width]fields.M31
	for round := 0; round < allRoundEnds; round++ {
		for i := range state {
			state[i] = state[i].Add(M31x16RoundConstants[round][i])
		}

		for i := 0; i < M31x16Width; i++ {
			var acc fields.M31
			for j := 0; j < M31x16Width; j++ {
				acc = acc.Add(M31x16MDS[i][j].Mul(state[j]))
			}
			scratch[i] = acc
		}
		copy(state, scratch[:])

		if round < M31x16FullRounds/2 || round >= partialRoundEnds {
			for i := range state {
				state[i] = state[i].Exp5()
			}
		} else {
			state[0] = state[0].Exp5()
		}
	}
}
