package cryptor

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMillerRabinKnownPrimes(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 17, 97, 7919, 104729}
	for _, p := range primes {
		assert.Truef(t, MillerRabin(big.NewInt(p), 20), "MillerRabin(%d)", p)
	}
}

func TestMillerRabinKnownComposites(t *testing.T) {
	composites := []int64{1, 4, 6, 8, 9, 15, 21, 100, 7921}
	for _, n := range composites {
		assert.Falsef(t, MillerRabin(big.NewInt(n), 20), "MillerRabin(%d)", n)
	}
}

func TestMillerRabinRejectsEvenNumbersAboveTwo(t *testing.T) {
	assert.False(t, MillerRabin(big.NewInt(1024), 20))
}

func TestPrimeSieveEmitsPrimesInOrder(t *testing.T) {
	want := []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	sieve := NewPrimeSieve()
	for i, w := range want {
		assert.Equalf(t, w, sieve.Next(), "sieve.Next() call %d", i)
	}
}

func TestPrimeAfterFindsNextPrime(t *testing.T) {
	p := PrimeAfter(big.NewInt(100))
	assert.Equal(t, 0, p.Cmp(big.NewInt(101)))
}

func TestPrimeRangeReturnsOnlyPrimes(t *testing.T) {
	from := big.NewInt(2)
	to := big.NewInt(50)
	step := big.NewInt(1)

	got := PrimeRange(from, to, step)
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

	if assert.Len(t, got, len(want)) {
		for i, w := range want {
			assert.Equalf(t, 0, got[i].Cmp(big.NewInt(w)), "PrimeRange(2, 50)[%d]", i)
		}
	}
}

func TestRSASafePrimeIsPrimeAndCorrectSize(t *testing.T) {
	size := 48
	p := RSASafePrime(size)
	assert.True(t, MillerRabin(p, 20))
	assert.Equal(t, size, p.BitLen())
	assert.True(t, hasNoSmallFactor(p, rsaSmallOddPrimes()[:1000]))
}

func TestRsaSmallOddPrimesExcludesTwo(t *testing.T) {
	primes := rsaSmallOddPrimes()
	assert.Len(t, primes, 1000)
	for _, p := range primes {
		assert.NotEqual(t, uint32(2), p)
		assert.NotZero(t, p%2, "rsaSmallOddPrimes() includes even value %d", p)
	}
}
