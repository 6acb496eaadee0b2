package nbt

import (
	"bytes"
	"io"
	"math"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// maxPrealloc bounds the memory allocated for an array or list before its
// elements have actually been read, so a corrupt count prefix cannot trigger
// an arbitrarily large allocation.
const maxPrealloc = 64 * 1024

// prealloc clamps a wire count to the allocation bound. The comparison stays
// in 64-bit space: on 32-bit platforms int(n) can go negative for counts
// above MaxInt32, which would make the capacity invalid.
func prealloc(n uint32, limit int) int {
	if int64(n) > int64(limit) {
		return limit
	}
	return int(n)
}

type writer struct {
	w   io.Writer
	buf [8]byte
}

func (w *writer) write1(n uint8) error {
	w.buf[0] = n
	_, err := w.w.Write(w.buf[:1])
	return err
}

func (w *writer) write2(n uint16) error {
	w.buf[0] = byte(n >> 8)
	w.buf[1] = byte(n)
	_, err := w.w.Write(w.buf[:2])
	return err
}

func (w *writer) write4(n uint32) error {
	w.buf[0] = byte(n >> 24)
	w.buf[1] = byte(n >> 16)
	w.buf[2] = byte(n >> 8)
	w.buf[3] = byte(n)
	_, err := w.w.Write(w.buf[:4])
	return err
}

func (w *writer) write8(n uint64) error {
	w.buf[0] = byte(n >> 56)
	w.buf[1] = byte(n >> 48)
	w.buf[2] = byte(n >> 40)
	w.buf[3] = byte(n >> 32)
	w.buf[4] = byte(n >> 24)
	w.buf[5] = byte(n >> 16)
	w.buf[6] = byte(n >> 8)
	w.buf[7] = byte(n)
	_, err := w.w.Write(w.buf[:8])
	return err
}

// writeString writes the 16-bit byte length of s followed by its raw UTF-8
// bytes. Strings that do not fit the length prefix are an error, never
// truncated.
func (w *writer) writeString(s string) error {
	if len(s) > math.MaxUint16 {
		return errors.Wrapf(ErrStringTooLong, "%d bytes", len(s))
	}

	if err := w.write2(uint16(len(s))); err != nil {
		return err
	}

	_, err := io.WriteString(w.w, s)
	return err
}

func writeIntSlice[T constraints.Signed](w *writer, xs []T, size int) error {
	if err := w.write4(uint32(len(xs))); err != nil {
		return err
	}

	for _, x := range xs {
		var err error
		switch size {
		case 4:
			err = w.write4(uint32(int32(x)))
		case 8:
			err = w.write8(uint64(int64(x)))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

type reader struct {
	r   io.Reader
	buf [8]byte
}

// wrapEOF maps an end-of-stream error to ErrTruncated: the grammar promised
// more bytes than the source delivered. Other errors are transport failures
// and pass through untouched.
func wrapEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(ErrTruncated, err.Error())
	}
	return err
}

func (r *reader) read(n int) ([]byte, error) {
	b := r.buf[:n]
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, wrapEOF(err)
	}
	return b, nil
}

func (r *reader) read1() (uint8, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) read2() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (r *reader) read4() (uint32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (r *reader) read8() (uint64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7]), nil
}

// readString reads a 16-bit byte length followed by that many bytes and
// validates them as UTF-8.
func (r *reader) readString() (string, error) {
	l, err := r.read2()
	if err != nil {
		return "", err
	}

	if l == 0 {
		return "", nil
	}

	b := make([]byte, l)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return "", wrapEOF(err)
	}

	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidUTF8, "%q", b)
	}

	return string(b), nil
}

// readByteSlice reads a 32-bit element count followed by that many bytes.
// The buffer grows as data arrives rather than being allocated up front.
func (r *reader) readByteSlice() ([]byte, error) {
	n, err := r.read4()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(prealloc(n, maxPrealloc))
	if _, err := io.CopyN(&buf, r.r, int64(n)); err != nil {
		return nil, wrapEOF(err)
	}

	return buf.Bytes(), nil
}

func readIntSlice[T constraints.Signed](r *reader, size int) ([]T, error) {
	n, err := r.read4()
	if err != nil {
		return nil, err
	}

	xs := make([]T, 0, prealloc(n, maxPrealloc/size))
	for i := uint32(0); i < n; i++ {
		var x T
		switch size {
		case 4:
			v, err := r.read4()
			if err != nil {
				return nil, err
			}
			x = T(int32(v))
		case 8:
			v, err := r.read8()
			if err != nil {
				return nil, err
			}
			x = T(int64(v))
		}
		xs = append(xs, x)
	}

	return xs, nil
}
