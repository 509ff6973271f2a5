package netbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPutBuffer(t *testing.T) {
	b := GetBuffer(100)
	require.GreaterOrEqual(t, b.Size(), 100)
	require.Equal(t, 256, b.Size())
	require.True(t, b.Empty())
	require.Equal(t, 0, b.ReadPosition())

	require.NoError(t, b.AppendUint32(42))
	PutBuffer(b)
	require.Equal(t, 0, b.Size())
	require.Equal(t, 0, b.DataLength())
}

func TestGetBufferLarge(t *testing.T) {
	b := GetBuffer(1 << 20)
	require.Equal(t, 1<<20, b.Size())
	PutBuffer(b)
}

func TestGetBufferZeroHint(t *testing.T) {
	b := GetBuffer(0)
	require.Equal(t, 64, b.Size())
	PutBuffer(b)
}

func TestPutBufferBorrowed(t *testing.T) {
	storage := make([]byte, 64)
	b, err := Wrap(storage, 8)
	require.NoError(t, err)

	// Borrowed storage must not enter the pool.
	PutBuffer(b)
	require.Equal(t, 64, b.Size())
	require.Equal(t, 8, b.DataLength())
}

func TestGetVarintBuffer(t *testing.T) {
	b := GetVarintBuffer(32)
	require.Equal(t, 64, b.Size())
	_, err := b.AppendUvarint(0x4000)
	require.NoError(t, err)
	v, _, err := b.ReadUvarint()
	require.NoError(t, err)
	require.Equal(t, uint64(0x4000), v)
	PutVarintBuffer(b)
}

func TestOptimalBufferSize(t *testing.T) {
	require.Equal(t, 64, OptimalBufferSize(0))
	require.Equal(t, 64, OptimalBufferSize(64))
	require.Equal(t, 256, OptimalBufferSize(65))
	require.Equal(t, 65536, OptimalBufferSize(65536))
	require.Equal(t, 131072, OptimalBufferSize(65537))
}
