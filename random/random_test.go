package random_test

import (
	"testing"

	"github.com/katalvlaran/echelon/random"
	"github.com/stretchr/testify/require"
)

// TestNewIsDeterministic ensures equal seeds give equal streams.
func TestNewIsDeterministic(t *testing.T) {
	a, b := random.New(42), random.New(42)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Uniform(), b.Uniform())
	}
}

// TestDifferentSeedsDiverge guards against the seed being ignored.
func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := random.New(1), random.New(2)
	same := true
	for i := 0; i < 16; i++ {
		if a.Uniform() != b.Uniform() {
			same = false
		}
	}
	require.False(t, same)
}

// TestUniformBounds checks the half-open intervals of every draw kind.
func TestUniformBounds(t *testing.T) {
	r := random.New(7)
	for i := 0; i < 1000; i++ {
		u := r.Uniform()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)

		v := r.UniformInRange(-3, 5)
		require.GreaterOrEqual(t, v, -3.0)
		require.Less(t, v, 5.0)

		n := r.IntInRange(1, 4)
		require.GreaterOrEqual(t, n, 1)
		require.Less(t, n, 4)
	}
}

// TestIntInRangePanicsOnEmptyRange documents the precondition lo < hi.
func TestIntInRangePanicsOnEmptyRange(t *testing.T) {
	r := random.New(0)
	require.Panics(t, func() { r.IntInRange(3, 3) })
}

// TestNewSeed ensures crypto seeding works and yields varying values.
func TestNewSeed(t *testing.T) {
	s1, err := random.NewSeed()
	require.NoError(t, err)
	s2, err := random.NewSeed()
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)
}
