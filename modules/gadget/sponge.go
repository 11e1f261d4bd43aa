package gadget

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/rangecheck"

	"github.com/mint-cash/Plonky3/modules/fields"
	"github.com/mint-cash/Plonky3/modules/symmetric"
)

// PaddingFreeSponge is symmetric.PaddingFreeSponge over circuit variables.
// Input lengths are fixed at circuit definition time, so the absorb schedule
// is the same as the native one.
type PaddingFreeSponge struct {
	api         frontend.API
	permutation Permutation
	config      symmetric.Config
}

func NewPaddingFreeSponge(
	api frontend.API,
	permutation Permutation,
	config symmetric.Config,
) (*PaddingFreeSponge, error) {

	if err := config.Validate(permutation.Width()); err != nil {
		return nil, err
	}

	return &PaddingFreeSponge{api: api, permutation: permutation, config: config}, nil
}

func (s *PaddingFreeSponge) Config() symmetric.Config {
	return s.config
}

// Permutations is the number of permutation calls hashing n elements takes.
func (s *PaddingFreeSponge) Permutations(n int) int {
	return (n + s.config.Rate - 1) / s.config.Rate
}

func (s *PaddingFreeSponge) Hash(input ...frontend.Variable) []frontend.Variable {
	state := zeroState(s.config.Width)

	for start := 0; start < len(input); start += s.config.Rate {
		end := min(start+s.config.Rate, len(input))
		copy(state, input[start:end])
		s.permutation.Permute(state)
	}

	return append([]frontend.Variable(nil), state[:s.config.Out]...)
}

// MultiField32PaddingFreeSponge is symmetric.MultiField32PaddingFreeSponge over
// circuit variables. The large field is the native field of the circuit, and
// every input is constrained to a canonical element of the small field.
type MultiField32PaddingFreeSponge struct {
	api          frontend.API
	permutation  Permutation
	config       symmetric.Config
	rangeChecker frontend.Rangechecker

	smallBits int
	smallMax  *big.Int
	numFElms  int
}

func NewMultiField32PaddingFreeSponge(
	api frontend.API,
	small fields.Field,
	permutation Permutation,
	config symmetric.Config,
) (*MultiField32PaddingFreeSponge, error) {

	native := fields.PrimeField{Name: "native", Modulus: api.Compiler().Field()}
	numFElms, err := symmetric.PackingRatio(small, native)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(permutation.Width()); err != nil {
		return nil, err
	}

	return &MultiField32PaddingFreeSponge{
		api:          api,
		permutation:  permutation,
		config:       config,
		rangeChecker: rangecheck.New(api),
		smallBits:    small.Bits(),
		smallMax:     new(big.Int).Sub(small.Order(), big.NewInt(1)),
		numFElms:     numFElms,
	}, nil
}

func (s *MultiField32PaddingFreeSponge) Config() symmetric.Config {
	return s.config
}

func (s *MultiField32PaddingFreeSponge) NumFElms() int {
	return s.numFElms
}

// reduce folds digits little endian in base 2^32, see fields.Reduce32BN254.
func (s *MultiField32PaddingFreeSponge) reduce(digits []frontend.Variable) frontend.Variable {
	var acc frontend.Variable = 0
	for i := len(digits) - 1; i >= 0; i-- {
		s.rangeChecker.Check(digits[i], s.smallBits)
		s.api.AssertIsLessOrEqual(digits[i], s.smallMax)
		acc = s.api.Add(s.api.Mul(acc, fields.DigitBase), digits[i])
	}
	return acc
}

func (s *MultiField32PaddingFreeSponge) Hash(input ...frontend.Variable) []frontend.Variable {
	state := zeroState(s.config.Width)
	block := s.numFElms * s.config.Rate

	for start := 0; start < len(input); start += block {
		for cell := 0; cell < s.config.Rate; cell++ {
			lo := start + cell*s.numFElms
			if lo >= len(input) {
				// carried over from the previous permutation
				break
			}
			hi := min(lo+s.numFElms, len(input))
			state[cell] = s.reduce(input[lo:hi])
		}
		s.permutation.Permute(state)
	}

	return append([]frontend.Variable(nil), state[:s.config.Out]...)
}

func zeroState(width int) []frontend.Variable {
	state := make([]frontend.Variable, width)
	for i := range state {
		state[i] = 0
	}
	return state
}
