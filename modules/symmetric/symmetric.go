// Package symmetric implements the padding-free, overwrite-mode sponges used to
// hash streams of field elements into fixed size digests, both over a single
// field and across a 32-bit field and a larger permutation field.
package symmetric

// Permutation is a fixed width cryptographic permutation over T.
//
// Permute maps the Width() cells of state to their image in place. It must be
// deterministic and keep no mutable state between calls, the sponges rely on
// that to be shareable across goroutines.
type Permutation[T any] interface {
	Width() int
	Permute(state []T)
}

// Hasher hashes a sequence of In items into a fixed length digest of Out.
type Hasher[In, Out any] interface {
	// Hash absorbs input and returns the digest.
	Hash(input ...In) []Out

	// HashIter pulls items from next until it reports false, so that long
	// inputs never need to be materialized.
	HashIter(next func() (In, bool)) []Out
}

// Reducer folds up to NumFElms small field digits into one element of the
// permutation field. The digits slice is reused between calls and must not be
// retained.
type Reducer[F, PF any] func(digits []F) PF

// SliceIter walks over input for HashIter.
func SliceIter[T any](input []T) func() (T, bool) {
	i := 0
	return func() (T, bool) {
		if i >= len(input) {
			var zero T
			return zero, false
		}
		i++
		return input[i-1], true
	}
}
