package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceNext(t *testing.T) {
	t.Parallel()

	var seq Sequence
	require.Equal(t, int64(0), seq.Next())
	require.Equal(t, int64(1), seq.Next())
	require.Equal(t, int64(2), seq.Next())
}

func TestSequenceIndependence(t *testing.T) {
	t.Parallel()

	var a, b Sequence
	require.Equal(t, int64(0), a.Next())
	require.Equal(t, int64(1), a.Next())

	// A fresh sequence starts over; counters are not shared.
	require.Equal(t, int64(0), b.Next())
}

func TestSequenceCurrent(t *testing.T) {
	t.Parallel()

	var seq Sequence
	require.Equal(t, int64(0), seq.Current())

	seq.Next()
	seq.Next()
	require.Equal(t, int64(2), seq.Current())
}
