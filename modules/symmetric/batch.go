package symmetric

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// HashBatch hashes every input independently with h, using at most workers
// goroutines, and returns the digests in input order. Sponges are safe for
// concurrent use, the rounds of a single input still run one after another.
func HashBatch[In, Out any](
	ctx context.Context,
	h Hasher[In, Out],
	inputs [][]In,
	workers int,
) ([][]Out, error) {

	digests := make([][]Out, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range inputs {
		if gctx.Err() != nil {
			break
		}

		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			digests[i] = h.Hash(inputs[i]...)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return digests, nil
}
