// Package generator fabricates the business metrics and headlines.
package generator

import "math/rand"

// Source yields floats uniformly distributed over [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// DefaultSource is backed by the process-wide math/rand generator and is
// safe for concurrent use.
func DefaultSource() Source {
	return globalSource{}
}

// pick maps a draw onto [0, n).
func pick(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
