package cryptor

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModInverseRoundTrip(t *testing.T) {
	cases := []struct {
		a, m int64
	}{
		{3, 11},
		{65535, 1000000007},
		{17, 3120},
		{1, 97},
	}

	for _, c := range cases {
		a := big.NewInt(c.a)
		m := big.NewInt(c.m)

		inv, err := ModInverse(a, m)
		require.NoErrorf(t, err, "ModInverse(%d, %d)", c.a, c.m)

		product := new(big.Int).Mul(a, inv)
		product.Mod(product, m)
		assert.Equalf(t, 0, product.Cmp(big.NewInt(1)), "ModInverse(%d, %d) = %s, a*inv mod m = %s", c.a, c.m, inv, product)
		assert.Falsef(t, inv.Sign() < 0 || inv.Cmp(m) >= 0, "ModInverse(%d, %d) = %s not in [0, m)", c.a, c.m, inv)
	}
}

func TestModInverseNoInverseWhenNotCoprime(t *testing.T) {
	a := big.NewInt(6)
	m := big.NewInt(9)

	_, err := ModInverse(a, m)
	require.Error(t, err)
	assert.True(t, IsNoInverseError(err))
}

func TestModInverseZeroInputsHaveNoInverse(t *testing.T) {
	_, err := ModInverse(big.NewInt(0), big.NewInt(5))
	assert.True(t, IsNoInverseError(err))

	_, err = ModInverse(big.NewInt(5), big.NewInt(0))
	assert.True(t, IsNoInverseError(err))
}
