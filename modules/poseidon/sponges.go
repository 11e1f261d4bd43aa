package poseidon

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/mint-cash/Plonky3/modules/fields"
	"github.com/mint-cash/Plonky3/modules/symmetric"
)

var (
	// M31SpongeConfig hashes M31 elements with rate 8 and an 8 cell digest.
	M31SpongeConfig = symmetric.Config{Width: M31x16Width, Rate: 8, Out: 8}

	// BN254SpongeConfig packs 32-bit field data into 2 rate cells of a width 3
	// BN254 state and returns a single scalar.
	BN254SpongeConfig = symmetric.Config{Width: BN254x3Width, Rate: 2, Out: 1}
)

// NewM31Sponge is the padding-free sponge over Mersenne31 driven by the width
// 16 Poseidon permutation.
func NewM31Sponge() *symmetric.PaddingFreeSponge[fields.M31] {
	sponge, err := symmetric.NewPaddingFreeSponge[fields.M31](NewPoseidonM31x16(), M31SpongeConfig)
	if err != nil {
		panic(err.Error())
	}
	return sponge
}

// NewBN254MultiFieldSponge hashes elements of the 32-bit field F into BN254
// scalars with Poseidon2 t=3.
func NewBN254MultiFieldSponge[F fields.Canonical32]() (
	*symmetric.MultiField32PaddingFreeSponge[F, fr.Element], error) {

	var zero F
	return symmetric.NewMultiField32PaddingFreeSponge[F, fr.Element](
		zero.Field(),
		fields.BN254Fr,
		NewPoseidon2BN254x3(),
		fields.Reduce32BN254[F],
		BN254SpongeConfig,
	)
}

// NewBN254Sponge is the single field sponge over BN254 used by circuit
// transcripts, same shape as the multi field one.
func NewBN254Sponge() *symmetric.PaddingFreeSponge[fr.Element] {
	sponge, err := symmetric.NewPaddingFreeSponge[fr.Element](NewPoseidon2BN254x3(), BN254SpongeConfig)
	if err != nil {
		panic(err.Error())
	}
	return sponge
}
