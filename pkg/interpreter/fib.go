package interpreter

import "math/big"

// fibMatrixThreshold picks between the iterative and matrix algorithms. The
// threshold is a performance choice only; both sides produce the same
// sequence, so it is not observable in results.
const fibMatrixThreshold = 1000

func fib(n *big.Int) *big.Int {
	if n.Cmp(big.NewInt(fibMatrixThreshold)) < 0 {
		return fibIterative(n)
	}
	return fibMatrix(n)
}

// fibIterative walks the (a, b) pair n times. Callers guarantee n fits in a
// machine word (the matrix path takes over long before that stops holding).
func fibIterative(n *big.Int) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := n.Int64(); i > 0; i-- {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}

// matrix2 is a 2x2 unbounded-precision integer matrix in row-major order.
type matrix2 [4]*big.Int

func matrixMul(a, b matrix2) matrix2 {
	mul := func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }
	return matrix2{
		new(big.Int).Add(mul(a[0], b[0]), mul(a[1], b[2])),
		new(big.Int).Add(mul(a[0], b[1]), mul(a[1], b[3])),
		new(big.Int).Add(mul(a[2], b[0]), mul(a[3], b[2])),
		new(big.Int).Add(mul(a[2], b[1]), mul(a[3], b[3])),
	}
}

func matrixPow(m matrix2, n *big.Int) matrix2 {
	switch {
	case n.Sign() == 0:
		return matrix2{big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(1)}
	case n.Cmp(big.NewInt(1)) == 0:
		return m
	case n.Bit(0) == 0:
		half := matrixPow(m, new(big.Int).Rsh(n, 1))
		return matrixMul(half, half)
	default:
		return matrixMul(m, matrixPow(m, new(big.Int).Sub(n, big.NewInt(1))))
	}
}

// fibMatrix computes F(n) as entry [1][0] of [[1,1],[1,0]]^n, trading O(n)
// additions for O(log n) big-integer multiplications.
func fibMatrix(n *big.Int) *big.Int {
	m := matrix2{big.NewInt(1), big.NewInt(1), big.NewInt(1), big.NewInt(0)}
	return matrixPow(m, n)[2]
}
