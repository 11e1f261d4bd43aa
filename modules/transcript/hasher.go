package transcript

import (
	"github.com/consensys/gnark/frontend"

	"github.com/mint-cash/Plonky3/modules/fields"
	"github.com/mint-cash/Plonky3/modules/gadget"
	"github.com/mint-cash/Plonky3/modules/poseidon"
)

// FieldHasher describes the behavior of a field hasher in a Fiat-Shamir
// transcript. The implementation should be considered to be immutable, as
// the sponge state is managed by a FieldHasherTranscript instance.
type FieldHasher interface {
	// StateCapacity returns how many base field elements can be used in a state
	// dumped by the HashToState method.
	StateCapacity() uint

	// HashToState hashes a bunch of base field elements to a "hash state",
	// namely a slice of base field elements, can be used up to StateCapacity.
	// It also reports the number of permutation calls spent.
	HashToState(fs ...frontend.Variable) ([]frontend.Variable, uint)
}

// SpongeFieldHasher is a FieldHasher over a padding-free sponge, whose digest
// is the hash state.
type SpongeFieldHasher struct {
	sponge *gadget.PaddingFreeSponge
}

func NewSpongeFieldHasher(sponge *gadget.PaddingFreeSponge) *SpongeFieldHasher {
	return &SpongeFieldHasher{sponge: sponge}
}

// NewFieldHasher instantiates the sponge tied to the field of the engine.
func NewFieldHasher(engine fields.ArithmeticEngine) (*SpongeFieldHasher, error) {
	var (
		perm   gadget.Permutation
		sponge *gadget.PaddingFreeSponge
		err    error
	)

	switch engine.ECCFieldEnum {
	case fields.ECCBN254:
		perm = gadget.NewPoseidon2BN254x3(engine.API)
		sponge, err = gadget.NewPaddingFreeSponge(engine.API, perm, poseidon.BN254SpongeConfig)
	case fields.ECCM31:
		perm = gadget.NewPoseidonM31x16(engine.API)
		sponge, err = gadget.NewPaddingFreeSponge(engine.API, perm, poseidon.M31SpongeConfig)
	case fields.ECCGF2:
		// NOTE no GF2 sponge, binary fields are not hashed in circuit
		fallthrough
	default:
		panic("unsupported transcript from field type")
	}
	if err != nil {
		return nil, err
	}

	return NewSpongeFieldHasher(sponge), nil
}

func (h *SpongeFieldHasher) StateCapacity() uint {
	return uint(h.sponge.Config().Out)
}

func (h *SpongeFieldHasher) HashToState(fs ...frontend.Variable) ([]frontend.Variable, uint) {
	return h.sponge.Hash(fs...), uint(h.sponge.Permutations(len(fs)))
}
