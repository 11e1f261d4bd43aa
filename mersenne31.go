package main

import (
	"context"
	"fmt"

	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo"
	ecgoTest "github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/test"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"
	"github.com/spf13/cobra"

	"github.com/mint-cash/Plonky3/modules/fields"
	"github.com/mint-cash/Plonky3/modules/gadget"
	"github.com/mint-cash/Plonky3/modules/poseidon"
	"github.com/mint-cash/Plonky3/modules/symmetric"
)

var checkCircuit bool

func init() {
	spongeCmd.AddCommand(m31Cmd)
	m31Cmd.Flags().BoolVar(&checkCircuit, "check-circuit", false, "Recompute the digests in an ECC circuit over Mersenne31 and check it.")
}

var m31Cmd = &cobra.Command{
	Use:   "m31",
	Short: "Hash Mersenne31 elements with the Poseidon M31x16 sponge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Mersenne31SpongeImpl(cmd.Context())
	},
}

// M31SpongeCircuit asserts that Digest is the M31 sponge digest of Inputs.
type M31SpongeCircuit struct {
	Inputs []frontend.Variable
	Digest []frontend.Variable
}

func NewM31SpongeCircuit(inputLen int) M31SpongeCircuit {
	return M31SpongeCircuit{
		Inputs: make([]frontend.Variable, inputLen),
		Digest: make([]frontend.Variable, poseidon.M31SpongeConfig.Out),
	}
}

func (c *M31SpongeCircuit) Define(api frontend.API) error {
	sponge, err := gadget.NewPaddingFreeSponge(api, gadget.NewPoseidonM31x16(api), poseidon.M31SpongeConfig)
	if err != nil {
		return err
	}

	arithmeticEngine := fields.ArithmeticEngine{API: api, ECCFieldEnum: fields.ECCM31}
	arithmeticEngine.AssertEq(sponge.Hash(c.Inputs...), c.Digest)
	return nil
}

func Mersenne31SpongeImpl(ctx context.Context) error {
	log := logger.Logger().With().Str("field", fields.ECCM31.String()).Logger()

	raw, err := readMessages()
	if err != nil {
		return err
	}

	messages := make([][]fields.M31, len(raw))
	for i, message := range raw {
		messages[i] = make([]fields.M31, len(message))
		for j, v := range message {
			if v >= fields.M31Modulus {
				return fmt.Errorf("message %d: element %d is not a canonical Mersenne31 element", i, v)
			}
			messages[i][j] = fields.NewM31(v)
		}
	}

	sponge := poseidon.NewM31Sponge()
	digests, err := symmetric.HashBatch[fields.M31, fields.M31](ctx, sponge, messages, workers)
	if err != nil {
		return err
	}

	for i, digest := range digests {
		log.Info().Int("message", i).Int("len", len(messages[i])).Stringers("digest", m31Stringers(digest)).Msg("hashed")
	}

	if !checkCircuit {
		return nil
	}

	for i, message := range messages {
		if err := checkM31Circuit(message, digests[i]); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		log.Info().Int("message", i).Msg("circuit satisfied")
	}
	return nil
}

func checkM31Circuit(message, digest []fields.M31) error {
	circuit := NewM31SpongeCircuit(len(message))
	m31Compilation, err := ecgo.Compile(fields.ECCM31.FieldModulus(), &circuit)
	if err != nil {
		return err
	}

	assignment := NewM31SpongeCircuit(len(message))
	for i, v := range message {
		assignment.Inputs[i] = uint64(v)
	}
	for i, v := range digest {
		assignment.Digest[i] = uint64(v)
	}

	log := logger.Logger()
	log.Debug().Msg("solving witness")
	witness, err := m31Compilation.GetInputSolver().SolveInput(&assignment, 0)
	if err != nil {
		return err
	}

	log.Debug().Msg("checking satisfiability")
	if !ecgoTest.CheckCircuit(m31Compilation.GetLayeredCircuit(), witness) {
		return fmt.Errorf("layered circuit not satisfied")
	}
	return nil
}

func m31Stringers(digest []fields.M31) []fmt.Stringer {
	res := make([]fmt.Stringer, len(digest))
	for i := range digest {
		res[i] = digest[i]
	}
	return res
}
