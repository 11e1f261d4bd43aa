package symmetric

import (
	"math/big"
	"sync"

	"github.com/mint-cash/Plonky3/modules/fields"
)

// incrementPermutation adds one to every cell, which is enough to follow the
// absorb schedule by hand.
type incrementPermutation struct {
	width int
}

func (p incrementPermutation) Width() int {
	return p.width
}

func (p incrementPermutation) Permute(state []uint64) {
	for i := range state {
		state[i]++
	}
}

// recordingPermutation wraps a permutation and keeps a copy of the state
// before and after every call.
type recordingPermutation struct {
	Permutation[uint64]

	mu      sync.Mutex
	inputs  [][]uint64
	outputs [][]uint64
}

func (p *recordingPermutation) Permute(state []uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.inputs = append(p.inputs, append([]uint64(nil), state...))
	p.Permutation.Permute(state)
	p.outputs = append(p.outputs, append([]uint64(nil), state...))
}

func (p *recordingPermutation) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inputs)
}

func newRecorder(width int) *recordingPermutation {
	return &recordingPermutation{Permutation: incrementPermutation{width: width}}
}

// decimalReducer packs digits below 1000 as decimal triples, least
// significant first, so packed cells can be read back in test expectations.
func decimalReducer(digits []fields.M31) uint64 {
	var v uint64
	for i := len(digits) - 1; i >= 0; i-- {
		v = v*1000 + uint64(digits[i])
	}
	return v
}

// mersenne127 is a 127-bit field, it packs four M31 elements per cell.
var mersenne127 = fields.PrimeField{
	Name:    "m127",
	Modulus: new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)),
}

func m31s(vs ...uint64) []fields.M31 {
	res := make([]fields.M31, len(vs))
	for i, v := range vs {
		res[i] = fields.NewM31(v)
	}
	return res
}

func seq(from, to uint64) []uint64 {
	res := make([]uint64, 0, to-from+1)
	for v := from; v <= to; v++ {
		res = append(res, v)
	}
	return res
}
