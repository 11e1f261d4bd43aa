package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"

	"github.com/mint-cash/Plonky3/modules/fields"
	"github.com/mint-cash/Plonky3/modules/gadget"
	"github.com/mint-cash/Plonky3/modules/poseidon"
	"github.com/mint-cash/Plonky3/modules/symmetric"
)

var (
	smallField     string
	groth16CRSFile string
	groth16VKFile  string
	groth16Mode    string
	proofFile      string
)

var bn254Cmd = &cobra.Command{
	Use:   "bn254",
	Short: "Hash 32-bit field elements into BN254 with the multi-field Poseidon2 sponge",
	Long: `
Hash 32-bit field elements into BN254 with the multi-field Poseidon2 sponge,
and optionally prove knowledge of the preimage of the first digest with Groth16.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return BN254SpongeImpl(cmd.Context())
	},
}

func init() {
	spongeCmd.AddCommand(bn254Cmd)
	bn254Cmd.Flags().StringVar(&smallField, "small-field", "m31", "The 32-bit field of the input - one of m31/babybear.")
	bn254Cmd.Flags().StringVar(&groth16CRSFile, "groth16-crs", "", "The Groth16 CRS used in the preimage proof.")
	bn254Cmd.Flags().StringVar(&groth16VKFile, "groth16-vk", "", "The Groth16 VK used in the preimage proof.")
	bn254Cmd.Flags().StringVar(&groth16Mode, "groth16-mode", "", "The Groth16 work mode - one of prove/verify/setup, empty to only hash.")
	bn254Cmd.Flags().StringVar(&proofFile, "proof", "", "The Groth16 preimage proof file.")
}

// HashPreimageCircuit proves knowledge of small field Inputs hashing to the
// public Digest under the BN254 multi-field sponge.
type HashPreimageCircuit struct {
	Inputs []frontend.Variable
	Digest frontend.Variable `gnark:",public"`

	small fields.Field `gnark:"-"`
}

func (c *HashPreimageCircuit) Define(api frontend.API) error {
	sponge, err := gadget.NewMultiField32PaddingFreeSponge(
		api, c.small, gadget.NewPoseidon2BN254x3(api), poseidon.BN254SpongeConfig)
	if err != nil {
		return err
	}

	api.AssertIsEqual(sponge.Hash(c.Inputs...)[0], c.Digest)
	return nil
}

func BN254SpongeImpl(ctx context.Context) error {
	raw, err := readMessages()
	if err != nil {
		return err
	}

	var (
		small   fields.Field
		digests [][]fr.Element
	)
	switch smallField {
	case "m31":
		small = fields.M31(0).Field()
		digests, err = hashBN254(ctx, raw, fields.NewM31)
	case "babybear":
		small = fields.BabyBear(0).Field()
		digests, err = hashBN254(ctx, raw, fields.NewBabyBear)
	default:
		return fmt.Errorf("unknown small field %q", smallField)
	}
	if err != nil {
		return err
	}

	log := logger.Logger().With().Str("field", smallField).Logger()
	for i, digest := range digests {
		log.Info().Int("message", i).Int("len", len(raw[i])).Str("digest", digest[0].String()).Msg("hashed")
	}

	if groth16Mode == "" {
		return nil
	}
	return Groth16PreimageImpl(small, raw[0], digests[0][0])
}

func hashBN254[F fields.Canonical32](
	ctx context.Context,
	raw [][]uint64,
	newElement func(uint64) F,
) ([][]fr.Element, error) {

	sponge, err := poseidon.NewBN254MultiFieldSponge[F]()
	if err != nil {
		return nil, err
	}

	var zero F
	small := zero.Field()

	messages := make([][]F, len(raw))
	for i, message := range raw {
		messages[i] = make([]F, len(message))
		for j, v := range message {
			if small.Order().Cmp(new(big.Int).SetUint64(v)) <= 0 {
				return nil, fmt.Errorf("message %d: element %d is not canonical in %s", i, v, smallField)
			}
			messages[i][j] = newElement(v)
		}
	}

	return symmetric.HashBatch[F, fr.Element](ctx, sponge, messages, workers)
}

func Groth16PreimageImpl(small fields.Field, message []uint64, digest fr.Element) error {
	log := logger.Logger()

	preimageCircuit := HashPreimageCircuit{
		Inputs: make([]frontend.Variable, len(message)),
		small:  small,
	}
	r1cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &preimageCircuit)
	if err != nil {
		return err
	}

	log.Info().
		Int("constraints", r1cs.GetNbConstraints()).
		Int("internal", r1cs.GetNbInternalVariables()).
		Int("secret", r1cs.GetNbSecretVariables()).
		Int("public", r1cs.GetNbPublicVariables()).
		Msg("compiled preimage circuit")

	// witness definition
	assignment := HashPreimageCircuit{
		Inputs: make([]frontend.Variable, len(message)),
		Digest: digest.BigInt(new(big.Int)),
	}
	for i, v := range message {
		assignment.Inputs[i] = v
	}

	log.Debug().Msg("solving witness")
	witness, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	if err != nil {
		return err
	}

	log.Debug().Msg("checking satisfiability")
	if err = r1cs.IsSolved(witness); err != nil {
		return fmt.Errorf("R1CS not satisfied: %w", err)
	}

	pk := groth16.NewProvingKey(ecc.BN254)
	vk := groth16.NewVerifyingKey(ecc.BN254)
	groth16Proof := groth16.NewProof(ecc.BN254)

	switch groth16Mode {
	case "setup":
		log.Info().Msg("Groth16 generating setup from scratch")
		if pk, vk, err = groth16.Setup(r1cs); err != nil {
			return err
		}

		if err = writeTo(groth16CRSFile, pk); err != nil {
			return err
		}
		if err = writeTo(groth16VKFile, vk); err != nil {
			return err
		}
	case "prove":
		log.Info().Msg("Groth16 reading CRS from file")
		if err = readFrom(groth16CRSFile, pk); err != nil {
			return err
		}

		if groth16Proof, err = groth16.Prove(r1cs, pk, witness); err != nil {
			return fmt.Errorf("Groth16 fails: %w", err)
		}

		if err = writeTo(proofFile, groth16Proof); err != nil {
			return err
		}
	case "verify":
		log.Info().Msg("Groth16 reading vk from file")
		if err = readFrom(groth16VKFile, vk); err != nil {
			return err
		}
		if err = readFrom(proofFile, groth16Proof); err != nil {
			return err
		}

		publicWitness, err := witness.Public()
		if err != nil {
			return err
		}

		if err = groth16.Verify(groth16Proof, vk, publicWitness); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown Groth16 mode %q", groth16Mode)
	}

	log.Info().Str("mode", groth16Mode).Msg("done")
	return nil
}

func writeTo(path string, w interface {
	WriteTo(io.Writer) (int64, error)
}) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = w.WriteTo(file)
	return err
}

func readFrom(path string, r interface {
	ReadFrom(io.Reader) (int64, error)
}) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = r.ReadFrom(file)
	return err
}
