package cryptor

import (
	"crypto/rand"
	"math/big"
	"sync"
)

// MillerRabin runs the probabilistic primality test for rounds
// independent witnesses, special-casing n < 10 against the set
// {2, 3, 5, 7} the same way the reference sieve does.
func MillerRabin(n *big.Int, rounds int) bool {
	one := big.NewInt(1)
	two := big.NewInt(2)
	ten := big.NewInt(10)

	if n.Cmp(ten) < 0 {
		switch n.Int64() {
		case 2, 3, 5, 7:
			return true
		default:
			return false
		}
	}

	if new(big.Int).And(n, one).Sign() == 0 {
		return n.Cmp(two) == 0
	}

	s := 0
	d := new(big.Int).Sub(n, one)
	for new(big.Int).And(d, one).Sign() == 0 {
		s++
		d.Rsh(d, 1)
	}

	nMinus1 := new(big.Int).Sub(n, one)
	nMinus2 := new(big.Int).Sub(n, two)
	rangeSize := new(big.Int).Sub(nMinus2, two)

	for i := 0; i < rounds; i++ {
		r, err := rand.Int(rand.Reader, rangeSize)
		if err != nil {
			return false
		}
		a := new(big.Int).Add(r, two)

		x := new(big.Int).Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		witnessed := false
		for j := 0; j < s-1; j++ {
			x.Exp(x, two, n)
			if x.Cmp(one) == 0 {
				break
			} else if x.Cmp(nMinus1) == 0 {
				witnessed = true
				break
			}
		}
		if !witnessed {
			return false
		}
	}

	return true
}

// randomOddCandidate samples a uniformly random odd integer in
// [2^(size-1), 2^size).
func randomOddCandidate(size int) *big.Int {
	low := new(big.Int).Lsh(big.NewInt(1), uint(size-1))
	high := new(big.Int).Lsh(big.NewInt(1), uint(size))
	span := new(big.Int).Sub(high, low)

	r, err := rand.Int(rand.Reader, span)
	if err != nil {
		panic(err)
	}
	num := new(big.Int).Add(low, r)
	if new(big.Int).And(num, big.NewInt(1)).Sign() == 0 {
		num.Add(num, big.NewInt(1))
	}
	return num
}

// PrimeAfter returns the first odd Miller-Rabin probable prime at or
// after seed, stepping onto the next odd number first so the +2
// advance never gets stuck on evens (so PrimeAfter(2) is 3).
func PrimeAfter(seed *big.Int) *big.Int {
	n := new(big.Int).Set(seed)
	if n.Bit(0) == 0 {
		n.Add(n, big.NewInt(1))
	}
	for !MillerRabin(n, 7) {
		n.Add(n, big.NewInt(2))
	}
	return n
}

// PrimeSieve generates successive primes by trial division against
// every prime already emitted, in the style of the sieve of
// Eratosthenes expressed as an incremental generator rather than a
// fixed-size bit array.
type PrimeSieve struct {
	primes []uint32
}

// NewPrimeSieve returns an empty sieve; its first Next() call yields 2.
func NewPrimeSieve() *PrimeSieve {
	return &PrimeSieve{}
}

// Next returns the next prime in ascending order.
func (s *PrimeSieve) Next() uint32 {
	seed := uint32(2)
	if len(s.primes) > 0 {
		seed = s.primes[len(s.primes)-1]
	}

	for candidate := seed; ; candidate++ {
		composite := false
		for _, p := range s.primes {
			if candidate%p == 0 {
				composite = true
				break
			}
		}
		if !composite {
			s.primes = append(s.primes, candidate)
			return candidate
		}
	}
}

// PrimeRange scans [from, to) in increments of step, testing every
// candidate for primality across a worker pool, and returns the
// survivors in ascending order.
func PrimeRange(from, to, step *big.Int) []*big.Int {
	var candidates []*big.Int
	for cur := new(big.Int).Set(from); cur.Cmp(to) < 0; cur.Add(cur, step) {
		candidates = append(candidates, new(big.Int).Set(cur))
	}

	isPrime := make([]bool, len(candidates))
	parallelRange(len(candidates), func(i int) {
		isPrime[i] = MillerRabin(candidates[i], 7)
	})

	var out []*big.Int
	for i, ok := range isPrime {
		if ok {
			out = append(out, candidates[i])
		}
	}
	return out
}

var (
	rsaSieveOnce     sync.Once
	rsaOddPrimes1000 []uint32
)

// rsaSmallOddPrimes returns the first 1000 odd primes (3, 5, 7, ...,
// skipping 2), computed once and cached.
func rsaSmallOddPrimes() []uint32 {
	rsaSieveOnce.Do(func() {
		sieve := NewPrimeSieve()
		out := make([]uint32, 0, 1000)
		for len(out) < 1000 {
			p := sieve.Next()
			if p == 2 {
				continue
			}
			out = append(out, p)
		}
		rsaOddPrimes1000 = out
	})
	return rsaOddPrimes1000
}

// hasNoSmallFactor reports whether p-1 is free of every factor in
// primes.
func hasNoSmallFactor(p *big.Int, primes []uint32) bool {
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	mod := new(big.Int)
	for _, prime := range primes {
		mod.Mod(pMinus1, big.NewInt(int64(prime)))
		if mod.Sign() == 0 {
			return false
		}
	}
	return true
}

// RSASafePrime generates a size-bit prime p such that p-1 shares no
// factor with the first 1000 odd primes, the side constraint RSA key
// generation here relies on to keep p-1 free of small factors an
// attacker could exploit via Pollard p-1 style attacks.
func RSASafePrime(size int) *big.Int {
	sieve := rsaSmallOddPrimes()
	candidate := randomOddCandidate(size)

	for {
		if MillerRabin(candidate, 7) && hasNoSmallFactor(candidate, sieve) {
			return new(big.Int).Set(candidate)
		}
		candidate.Add(candidate, big.NewInt(2))
	}
}
