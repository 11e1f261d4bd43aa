package transcript

import (
	"github.com/consensys/gnark/frontend"

	"github.com/mint-cash/Plonky3/modules/fields"
)

// FieldHasherTranscript is the transcript constructed from field hasher,
// instantiated by the Poseidon sponges for BN254 or Mersenne31.
type FieldHasherTranscript struct {
	fields.ArithmeticEngine

	// The hash function
	hasher FieldHasher

	// The values to feed the hash function
	dataPool []frontend.Variable

	// The hashState
	hashState []frontend.Variable

	// helper field: counting permutation calls, irrelevant to circuit
	count uint
}

// NewTranscript is the enter point to construct a new instance of transcript,
// that is decided by the field element tied to the transcript
func NewTranscript(arithmeticEngine fields.ArithmeticEngine) *FieldHasherTranscript {
	hasher, err := NewFieldHasher(arithmeticEngine)
	if err != nil {
		panic(err.Error())
	}

	return NewTranscriptFromHasher(arithmeticEngine, hasher)
}

func NewTranscriptFromHasher(
	arithmeticEngine fields.ArithmeticEngine, hasher FieldHasher) *FieldHasherTranscript {

	return &FieldHasherTranscript{
		ArithmeticEngine: arithmeticEngine,
		hasher:           hasher,
		dataPool:         make([]frontend.Variable, 0),
		hashState:        arithmeticEngine.Zeroes(hasher.StateCapacity()),
		count:            0,
	}
}

func (t *FieldHasherTranscript) AppendF(f frontend.Variable) {
	t.dataPool = append(t.dataPool, f)
}

func (t *FieldHasherTranscript) AppendFs(fs ...frontend.Variable) {
	t.dataPool = append(t.dataPool, fs...)
}

// CircuitF squeezes a single base field element.
func (t *FieldHasherTranscript) CircuitF() frontend.Variable {
	t.HashAndReturnState()
	return t.hashState[0]
}

// ChallengeF squeezes the limbs of one challenge field element.
func (t *FieldHasherTranscript) ChallengeF() []frontend.Variable {
	t.HashAndReturnState()
	return t.hashState[:t.ChallengeFieldDegree()]
}

func (t *FieldHasherTranscript) HashAndReturnState() []frontend.Variable {
	var newCount uint = 0

	if len(t.dataPool) != 0 {
		input := make([]frontend.Variable, 0, len(t.hashState)+len(t.dataPool))
		input = append(input, t.hashState...)
		input = append(input, t.dataPool...)
		t.hashState, newCount = t.hasher.HashToState(input...)

		t.count += newCount
		t.dataPool = nil
	} else {
		t.hashState, newCount = t.hasher.HashToState(t.hashState...)

		t.count += newCount
	}

	return t.hashState
}

func (t *FieldHasherTranscript) SetState(newHashState []frontend.Variable) {
	t.dataPool = nil
	t.hashState = newHashState
}

func (t *FieldHasherTranscript) GetCount() uint {
	return t.count
}

func (t *FieldHasherTranscript) ResetCount() {
	t.count = 0
}
