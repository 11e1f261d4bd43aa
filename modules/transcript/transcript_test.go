package transcript

import (
	"math/big"
	"testing"

	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo"
	ecgotest "github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo/test"
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/mint-cash/Plonky3/modules/fields"
	"github.com/mint-cash/Plonky3/modules/poseidon"
)

type TranscriptTestingCircuit struct {
	Input  []frontend.Variable
	Output frontend.Variable
	Next   frontend.Variable
}

func (t *TranscriptTestingCircuit) Define(api frontend.API) error {
	arithmeticEngine := fields.ArithmeticEngine{API: api, ECCFieldEnum: fields.ECCBN254}
	transcript := NewTranscript(arithmeticEngine)
	transcript.AppendFs(t.Input...)
	api.AssertIsEqual(transcript.CircuitF(), t.Output)
	api.AssertIsEqual(transcript.CircuitF(), t.Next)

	// 1 state cell and 5 inputs at rate 2, then the state alone
	if transcript.GetCount() != 4 {
		panic("transcript permutation count not matching")
	}
	return nil
}

// bn254Challenges replays the transcript natively: the first challenge hashes
// the zero state followed by the pool, the second one the state alone.
func bn254Challenges(input []uint64) (fr.Element, fr.Element) {
	sponge := poseidon.NewBN254Sponge()

	absorbed := make([]fr.Element, 1+len(input))
	for i, v := range input {
		absorbed[i+1].SetUint64(v)
	}
	first := sponge.Hash(absorbed...)[0]
	second := sponge.Hash(first)[0]
	return first, second
}

func TestTranscript(t *testing.T) {
	circuit := TranscriptTestingCircuit{
		Input: make([]frontend.Variable, 5),
	}
	r1cs, r1cs_err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	require.NoError(t, r1cs_err, "compile circuit error")

	first, second := bn254Challenges([]uint64{1, 2, 3, 4, 5})
	assignment := TranscriptTestingCircuit{
		Input:  []frontend.Variable{1, 2, 3, 4, 5},
		Output: first.BigInt(new(big.Int)),
		Next:   second.BigInt(new(big.Int)),
	}

	witness, witness_err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField())
	require.NoError(t, witness_err, "solving witness error")

	err := r1cs.IsSolved(witness)
	require.NoError(t, err, "solving witness error")

	assignment.Next = first.BigInt(new(big.Int))
	require.Error(t, test.IsSolved(&circuit, &assignment, ecc.BN254.ScalarField()))
}

type M31TranscriptCircuit struct {
	Input     []frontend.Variable
	Challenge []frontend.Variable
}

func (c *M31TranscriptCircuit) Define(api frontend.API) error {
	arithmeticEngine := fields.ArithmeticEngine{API: api, ECCFieldEnum: fields.ECCM31}
	transcript := NewTranscript(arithmeticEngine)
	transcript.AppendFs(c.Input...)
	arithmeticEngine.AssertEq(transcript.ChallengeF(), c.Challenge)
	return nil
}

func TestM31Transcript(t *testing.T) {
	input := []fields.M31{114514, 114514, 114514, 114514, 1, 2, 3}

	absorbed := make([]fields.M31, poseidon.M31SpongeConfig.Out, poseidon.M31SpongeConfig.Out+len(input))
	absorbed = append(absorbed, input...)
	state := poseidon.NewM31Sponge().Hash(absorbed...)

	assignment := M31TranscriptCircuit{
		Input:     make([]frontend.Variable, len(input)),
		Challenge: make([]frontend.Variable, fields.ECCM31.ChallengeFieldDegree()),
	}
	for i, v := range input {
		assignment.Input[i] = uint64(v)
	}
	for i := range assignment.Challenge {
		assignment.Challenge[i] = uint64(state[i])
	}

	circuit := M31TranscriptCircuit{
		Input:     make([]frontend.Variable, len(input)),
		Challenge: make([]frontend.Variable, fields.ECCM31.ChallengeFieldDegree()),
	}
	circuitCompileResult, err := ecgo.Compile(fields.ECCM31.FieldModulus(), &circuit)
	require.NoError(t, err, "compile circuit error")
	layeredCircuit := circuitCompileResult.GetLayeredCircuit()

	witness, err := circuitCompileResult.GetInputSolver().SolveInput(&assignment, 0)
	require.NoError(t, err, "solving witness error")

	require.True(t, ecgotest.CheckCircuit(layeredCircuit, witness), "check circuit error")
}

type countingHasher struct {
	calls [][]frontend.Variable
}

func (h *countingHasher) StateCapacity() uint {
	return 2
}

func (h *countingHasher) HashToState(fs ...frontend.Variable) ([]frontend.Variable, uint) {
	h.calls = append(h.calls, append([]frontend.Variable(nil), fs...))
	return []frontend.Variable{len(h.calls), len(fs)}, 1
}

func TestTranscriptAbsorbsStateAndPool(t *testing.T) {
	hasher := &countingHasher{}
	transcript := NewTranscriptFromHasher(
		fields.ArithmeticEngine{ECCFieldEnum: fields.ECCBN254}, hasher)

	transcript.AppendF(7)
	transcript.AppendFs(8, 9)
	require.Equal(t, []frontend.Variable{1, 5}, transcript.HashAndReturnState())
	require.Equal(t, []frontend.Variable{0, 0, 7, 8, 9}, hasher.calls[0])

	// an empty pool rehashes the state alone
	require.Equal(t, 2, transcript.CircuitF())
	require.Equal(t, []frontend.Variable{1, 5}, hasher.calls[1])
	require.Equal(t, uint(2), transcript.GetCount())

	transcript.SetState([]frontend.Variable{4, 4})
	transcript.AppendF(1)
	transcript.HashAndReturnState()
	require.Equal(t, []frontend.Variable{4, 4, 1}, hasher.calls[2])

	transcript.ResetCount()
	require.Equal(t, uint(0), transcript.GetCount())
}

func TestTranscriptUnsupportedField(t *testing.T) {
	require.Panics(t, func() {
		NewTranscript(fields.ArithmeticEngine{ECCFieldEnum: fields.ECCGF2})
	})
}
