package symmetric

// PaddingFreeSponge is a padding-free, overwrite-mode sponge over a single
// field: input elements replace the rate cells of the state directly.
type PaddingFreeSponge[T any] struct {
	permutation Permutation[T]
	config      Config
}

// NewPaddingFreeSponge builds a sponge driven by permutation, failing with a
// *ConfigError when the shape does not fit the permutation.
func NewPaddingFreeSponge[T any](
	permutation Permutation[T], config Config) (*PaddingFreeSponge[T], error) {

	if err := config.Validate(permutation.Width()); err != nil {
		return nil, err
	}

	return &PaddingFreeSponge[T]{permutation: permutation, config: config}, nil
}

func (s *PaddingFreeSponge[T]) Config() Config {
	return s.config
}

func (s *PaddingFreeSponge[T]) Hash(input ...T) []T {
	return s.HashIter(SliceIter(input))
}

func (s *PaddingFreeSponge[T]) HashIter(next func() (T, bool)) []T {
	state := make([]T, s.config.Width)

	for {
		absorbed := 0
		for absorbed < s.config.Rate {
			item, ok := next()
			if !ok {
				break
			}
			state[absorbed] = item
			absorbed++
		}

		// NOTE: rate cells not reached in a partial block keep the previous
		// permutation output, overwrite mode never clears them.
		if absorbed == 0 {
			break
		}
		s.permutation.Permute(state)

		if absorbed < s.config.Rate {
			break
		}
	}

	digest := make([]T, s.config.Out)
	copy(digest, state)
	return digest
}
