package cryptor

import "math/big"

// numberTheoryFind is the recursive core of the extended Euclidean
// algorithm: it walks the (u, g, x, y) state as tail recursion,
// returning (g, u, s) with u*a + s*modulus = g, where g is the gcd.
func numberTheoryFind(u, g, x, y, a, modulus *big.Int) (*big.Int, *big.Int, *big.Int) {
	if y.Sign() == 0 {
		s := new(big.Int).Mul(a, u)
		s.Sub(g, s)
		s.Quo(s, modulus)
		return g, u, s
	}

	q := new(big.Int).Quo(g, y)
	t := new(big.Int).Rem(g, y)
	s := new(big.Int).Mul(q, x)
	s.Sub(u, s)

	return numberTheoryFind(x, y, s, t, a, modulus)
}

// ModInverse computes the modular inverse of a modulo modulus via the
// extended Euclidean algorithm, returning a NoInverseError if
// gcd(a, modulus) != 1.
func ModInverse(a, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() == 0 || a.Sign() == 0 {
		return nil, NewNoInverseError(a, modulus)
	}

	g, u, _ := numberTheoryFind(
		big.NewInt(1), new(big.Int).Set(a),
		big.NewInt(0), new(big.Int).Set(modulus),
		new(big.Int).Set(a), new(big.Int).Set(modulus),
	)

	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, NewNoInverseError(a, modulus)
	}

	for u.Sign() < 0 {
		u.Add(u, modulus)
	}
	return u, nil
}
