package fields

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestECCFieldOrders(t *testing.T) {
	require.Equal(t, 0, ECCBN254.Order().Cmp(fr.Modulus()), "ecgo bn254 modulus should be gnark-crypto fr modulus")
	require.Equal(t, 0, ECCM31.Order().Cmp(big.NewInt(M31Modulus)))

	require.Equal(t, 254, ECCBN254.Bits())
	require.Equal(t, 254, BN254Fr.Bits())
	require.Equal(t, 31, ECCM31.Bits())
	require.Equal(t, 31, BabyBearField.Bits())
	require.Equal(t, 1, ECCGF2.Bits())
}

func TestPrimeFieldOrderIsACopy(t *testing.T) {
	order := BabyBearField.Order()
	order.SetInt64(7)
	require.Equal(t, int64(BabyBearModulus), BabyBearField.Order().Int64())
}

func TestM31Arithmetic(t *testing.T) {
	require.Equal(t, M31(0), NewM31(M31Modulus))
	require.Equal(t, M31(5), NewM31(M31Modulus+5))

	minusOne := NewM31(M31Modulus - 1)
	require.Equal(t, M31(0), minusOne.Add(1))
	require.Equal(t, M31(1), minusOne.Mul(minusOne))
	require.Equal(t, M31(32), M31(2).Exp5())

	r := rand.New(rand.NewSource(0x5eed))
	p := big.NewInt(M31Modulus)
	for i := 0; i < 256; i++ {
		a, b := NewM31(r.Uint64()), NewM31(r.Uint64())

		want := new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b)))
		want.Mod(want, p)
		require.Equal(t, want.Uint64(), uint64(a.Mul(b)))

		want.Add(big.NewInt(int64(a)), big.NewInt(int64(b)))
		want.Mod(want, p)
		require.Equal(t, want.Uint64(), uint64(a.Add(b)))
	}
}

func TestReduce32BN254(t *testing.T) {
	var zero fr.Element
	empty := Reduce32BN254[M31](nil)
	require.True(t, empty.Equal(&zero), "no digits fold to zero")

	single := Reduce32BN254([]M31{42})
	require.Equal(t, "42", single.String())

	r := rand.New(rand.NewSource(42))
	for n := 1; n <= 9; n++ {
		digits := make([]BabyBear, n)
		want := new(big.Int)
		for i := n - 1; i >= 0; i-- {
			digits[i] = NewBabyBear(r.Uint64())
			want.Lsh(want, 32)
			want.Add(want, big.NewInt(int64(digits[i])))
		}
		want.Mod(want, fr.Modulus())

		got := Reduce32BN254(digits)
		var gotBig big.Int
		got.BigInt(&gotBig)
		require.Equal(t, 0, want.Cmp(&gotBig), "reduction of %d digits", n)
	}
}

func TestReduce32BN254FullBufferWraps(t *testing.T) {
	// eight 31-bit digits span 256 bits against a 254-bit modulus, so two
	// canonical buffers differing by exactly r fold to the same scalar
	x := []M31{0, 1138881940, 2042196113, 674490440, 0, 0, 0, 811880051}
	y := []M31{268435455, 0, 0, 0, 2122229667, 1202698825, 516841430, 0}

	fx, fy := Reduce32BN254(x), Reduce32BN254(y)
	require.True(t, fx.Equal(&fy))

	// seven digits stay below r and never wrap
	require.Less(t, 7*31, fr.Bits)
}

func TestNonCanonicalElements(t *testing.T) {
	require.Equal(t, uint32(5), M31(M31Modulus+5).Canonical32())
	require.Equal(t, "5", M31(M31Modulus+5).String())
	require.Equal(t, M31(2), M31(1<<32-1).Add(M31(1<<32-1)))
	require.Equal(t, uint32(3), BabyBear(BabyBearModulus+3).Canonical32())

	require.Equal(t, ECCM31, M31(0).Field())
	require.Equal(t, BabyBearField, BabyBear(0).Field())
}
