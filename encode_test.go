package nbt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/nbtcodec/nbt"
	"github.com/stretchr/testify/require"
)

// helloWorldBytes is the reference encoding of a compound named "hello world"
// holding a single string entry name=Bananrama.
func helloWorldBytes() []byte {
	b := []byte{0x0a, 0x00, 0x0b}
	b = append(b, "hello world"...)
	b = append(b, 0x08, 0x00, 0x04)
	b = append(b, "name"...)
	b = append(b, 0x00, 0x09)
	b = append(b, "Bananrama"...)
	return append(b, 0x00)
}

func TestWriteCompoundTagHelloWorld(t *testing.T) {
	ct := nbt.NewNamedCompoundTag("hello world")
	ct.SetString("name", "Bananrama")

	var buf bytes.Buffer
	err := nbt.WriteCompoundTag(&buf, ct)
	require.NoError(t, err)
	require.Equal(t, helloWorldBytes(), buf.Bytes())
}

func TestWriteStringLengthPrefix(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int // byte count, not rune count
	}{
		{"empty", "", 0},
		{"ascii", "a", 1},
		{"accented", "héllo", 6},
		{"emoji", "🙂", 4},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ct := nbt.NewCompoundTag()
			ct.SetString("s", test.value)

			var buf bytes.Buffer
			err := nbt.WriteCompoundTag(&buf, ct)
			require.NoError(t, err)

			// 0x0a + empty root name + 0x08 + u16 len "s" + "s", then the
			// value's length prefix.
			b := buf.Bytes()[7:]
			require.Equal(t, uint16(test.want), uint16(b[0])<<8|uint16(b[1]))
			require.Equal(t, test.value, string(b[2:2+test.want]))
		})
	}
}

func TestWriteStringTooLong(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		ct := nbt.NewCompoundTag()
		ct.SetString("s", strings.Repeat("a", 65536))

		err := nbt.WriteCompoundTag(&bytes.Buffer{}, ct)
		require.ErrorIs(t, err, nbt.ErrStringTooLong)
	})

	t.Run("key", func(t *testing.T) {
		ct := nbt.NewCompoundTag()
		ct.SetInt(strings.Repeat("a", 65536), 1)

		err := nbt.WriteCompoundTag(&bytes.Buffer{}, ct)
		require.ErrorIs(t, err, nbt.ErrStringTooLong)
	})

	t.Run("max length is accepted", func(t *testing.T) {
		ct := nbt.NewCompoundTag()
		ct.SetString("s", strings.Repeat("a", 65535))

		err := nbt.WriteCompoundTag(&bytes.Buffer{}, ct)
		require.NoError(t, err)
	})
}

func TestWriteEmptyList(t *testing.T) {
	ct := nbt.NewCompoundTag()
	ct.SetList("l")

	var buf bytes.Buffer
	err := nbt.WriteCompoundTag(&buf, ct)
	require.NoError(t, err)

	want := []byte{
		0x0a, 0x00, 0x00, // root compound, empty name
		0x09, 0x00, 0x01, 'l', // list entry
		0x00,                   // element type: end
		0x00, 0x00, 0x00, 0x00, // count 0
		0x00, // end of root
	}
	require.Equal(t, want, buf.Bytes())
}

func TestWriteEmptyCompound(t *testing.T) {
	ct := nbt.NewCompoundTag()
	ct.SetCompound("c", nbt.NewCompoundTag())

	var buf bytes.Buffer
	err := nbt.WriteCompoundTag(&buf, ct)
	require.NoError(t, err)

	want := []byte{
		0x0a, 0x00, 0x00,
		0x0a, 0x00, 0x01, 'c',
		0x00, // empty compound body is just the sentinel
		0x00, // end of root
	}
	require.Equal(t, want, buf.Bytes())
}

func TestWriteHeterogeneousList(t *testing.T) {
	ct := nbt.NewCompoundTag()
	ct.SetList("l", nbt.NewIntTag(1), nbt.NewStringTag("x"))

	err := nbt.WriteCompoundTag(&bytes.Buffer{}, ct)
	require.ErrorIs(t, err, nbt.ErrHeterogeneousList)
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n -= len(p); w.n < 0 {
		return 0, errShortWrite
	}
	return len(p), nil
}

var errShortWrite = errors.New("write failed")

func TestWriteFailurePropagates(t *testing.T) {
	ct := nbt.NewNamedCompoundTag("hello world")
	ct.SetString("name", "Bananrama")

	err := nbt.WriteCompoundTag(&failingWriter{n: 5}, ct)
	require.ErrorIs(t, err, errShortWrite)
}
