package netbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringEmpty(t *testing.T) {
	b, err := NewSize(16)
	require.NoError(t, err)
	require.Equal(t, "", b.String())
}

func TestStringSingleLine(t *testing.T) {
	b, err := WrapAll([]byte("Hi!"))
	require.NoError(t, err)

	want := "00000000: 48 69 21" +
		strings.Repeat(" ", 13*3) +
		" :Hi!" + strings.Repeat(" ", 13) + ":\n"
	require.Equal(t, want, b.String())
}

func TestStringFullLine(t *testing.T) {
	b, err := WrapAll([]byte("0123456789abcdef"))
	require.NoError(t, err)

	want := "00000000: 30 31 32 33 34 35 36 37 38 39 61 62 63 64 65 66" +
		" :0123456789abcdef:\n"
	require.Equal(t, want, b.String())
}

func TestStringMultiLine(t *testing.T) {
	data := make([]byte, 20)
	copy(data, "0123456789abcdef")
	data[16] = 0x00
	data[17] = 0x7f
	data[18] = 'O'
	data[19] = 'K'
	b, err := WrapAll(data)
	require.NoError(t, err)

	want := "00000000: 30 31 32 33 34 35 36 37 38 39 61 62 63 64 65 66" +
		" :0123456789abcdef:\n" +
		"00000010: 00 7F 4F 4B" +
		strings.Repeat(" ", 12*3) +
		" :..OK" + strings.Repeat(" ", 12) + ":\n"
	require.Equal(t, want, b.String())
}

func TestStringSkipsConsumed(t *testing.T) {
	b, err := WrapAll([]byte("XXabc"))
	require.NoError(t, err)
	require.NoError(t, b.AdvanceReadPosition(2))

	// Offsets restart at zero for the unread view.
	want := "00000000: 61 62 63" +
		strings.Repeat(" ", 13*3) +
		" :abc" + strings.Repeat(" ", 13) + ":\n"
	require.Equal(t, want, b.String())
}
