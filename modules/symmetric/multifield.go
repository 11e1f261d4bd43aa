package symmetric

import (
	"github.com/mint-cash/Plonky3/modules/fields"
)

// MultiField32PaddingFreeSponge is a padding-free, overwrite-mode sponge whose
// permutation runs over a large field PF while its input lives in a 32-bit
// prime field F. Every rate cell takes NumFElms() consecutive F elements,
// folded into one PF element by the reducer.
type MultiField32PaddingFreeSponge[F, PF any] struct {
	permutation Permutation[PF]
	reduce      Reducer[F, PF]
	config      Config
	numFElms    int
}

// NewMultiField32PaddingFreeSponge builds the cross field sponge. It fails with
// a *ConfigError unless small is a 32-bit field of order strictly below the
// order of large, as packed digits would otherwise not fit a single cell.
func NewMultiField32PaddingFreeSponge[F, PF any](
	small, large fields.Field,
	permutation Permutation[PF],
	reduce Reducer[F, PF],
	config Config,
) (*MultiField32PaddingFreeSponge[F, PF], error) {

	numFElms, err := PackingRatio(small, large)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(permutation.Width()); err != nil {
		return nil, err
	}

	return &MultiField32PaddingFreeSponge[F, PF]{
		permutation: permutation,
		reduce:      reduce,
		config:      config,
		numFElms:    numFElms,
	}, nil
}

// PackingRatio checks that elements of small can be packed as 32-bit digits
// into elements of large and returns how many fit in one: bits(large) / bits(small).
func PackingRatio(small, large fields.Field) (int, error) {
	if small.Order().Cmp(large.Order()) >= 0 {
		return 0, configErrorf("small field order %s must be less than large field order %s",
			small.Order(), large.Order())
	}
	if small.Bits() > 32 {
		return 0, configErrorf("small field of %d bits does not fit 32-bit digits", small.Bits())
	}
	return large.Bits() / small.Bits(), nil
}

func (s *MultiField32PaddingFreeSponge[F, PF]) Config() Config {
	return s.config
}

// NumFElms is the number of small field elements packed into one state cell.
func (s *MultiField32PaddingFreeSponge[F, PF]) NumFElms() int {
	return s.numFElms
}

func (s *MultiField32PaddingFreeSponge[F, PF]) Hash(input ...F) []PF {
	return s.HashIter(SliceIter(input))
}

func (s *MultiField32PaddingFreeSponge[F, PF]) HashIter(next func() (F, bool)) []PF {
	state := make([]PF, s.config.Width)
	chunk := make([]F, 0, s.numFElms)
	exhausted := false

absorb:
	for !exhausted {
		for cell := 0; cell < s.config.Rate; cell++ {
			chunk = chunk[:0]
			for len(chunk) < s.numFElms && !exhausted {
				item, ok := next()
				if !ok {
					exhausted = true
					break
				}
				chunk = append(chunk, item)
			}

			if len(chunk) == 0 {
				if cell == 0 {
					break absorb
				}
				// untouched cells carry the previous permutation output
				continue
			}
			state[cell] = s.reduce(chunk)
		}

		s.permutation.Permute(state)
	}

	digest := make([]PF, s.config.Out)
	copy(digest, state)
	return digest
}
