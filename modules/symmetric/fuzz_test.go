package symmetric

import (
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzPaddingFreeSponge builds random sponge shapes and inputs and checks the
// absorb schedule against the permutation count the shape implies.
func FuzzPaddingFreeSponge(f *testing.F) {
	f.Add([]byte("padding free sponge"))
	f.Add([]byte{8, 0, 4, 0, 4, 0, 6, 0, 1, 2, 3, 4, 5, 6, 7, 8})

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		shape := make([]int, 4)
		for i := range shape {
			v, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			shape[i] = int(v % 24)
		}
		width := shape[0] + 1
		config := Config{Width: width, Rate: shape[1]%width + 1, Out: shape[2]%width + 1}
		n := shape[3] * 3

		input := make([]uint64, n)
		for i := range input {
			v, err := tp.GetUint16()
			if err != nil {
				t.Skip(err)
			}
			input[i] = uint64(v)
		}

		perm := newRecorder(width)
		sponge, err := NewPaddingFreeSponge[uint64](perm, config)
		if err != nil {
			t.Fatalf("valid shape %s rejected: %v", config, err)
		}

		digest := sponge.Hash(input...)
		if got, want := perm.calls(), (n+config.Rate-1)/config.Rate; got != want {
			t.Errorf("%d permutations for %d inputs with %s, want %d", got, n, config, want)
		}
		if len(digest) != config.Out {
			t.Errorf("digest of length %d, want %d", len(digest), config.Out)
		}

		again := sponge.HashIter(SliceIter(input))
		for i := range digest {
			if digest[i] != again[i] {
				t.Fatalf("HashIter diverges from Hash at cell %d", i)
			}
		}
	})
}
