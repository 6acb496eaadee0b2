package nbt

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"strconv"
)

var _ Tag = NewByteArrayTag(nil)

// ByteArrayTag holds a packed array of 8-bit integers. The wire bytes are the
// two's-complement view of the Go byte values, so []byte is used directly.
type ByteArrayTag []byte

// NewByteArrayTag returns a TAG_Byte_Array value.
func NewByteArrayTag(x []byte) ByteArrayTag {
	return ByteArrayTag(x)
}

func (v ByteArrayTag) V() any {
	return []byte(v)
}

func (v ByteArrayTag) Type() Type {
	return TypeByteArray
}

func (v ByteArrayTag) String() string {
	var dst bytes.Buffer
	dst.WriteString("\"\\x")
	_, _ = hex.NewEncoder(&dst).Write(v)
	dst.WriteByte('"')
	return dst.String()
}

func (v ByteArrayTag) MarshalJSON() ([]byte, error) {
	dst := make([]byte, base64.StdEncoding.EncodedLen(len(v))+2)
	dst[0] = '"'
	dst[len(dst)-1] = '"'
	base64.StdEncoding.Encode(dst[1:], v)
	return dst, nil
}

var _ Tag = NewIntArrayTag(nil)

type IntArrayTag []int32

// NewIntArrayTag returns a TAG_Int_Array value.
func NewIntArrayTag(x []int32) IntArrayTag {
	return IntArrayTag(x)
}

func (v IntArrayTag) V() any {
	return []int32(v)
}

func (v IntArrayTag) Type() Type {
	return TypeIntArray
}

func (v IntArrayTag) String() string {
	t, _ := v.MarshalJSON()
	return string(t)
}

func (v IntArrayTag) MarshalJSON() ([]byte, error) {
	dst := []byte{'['}
	for i, x := range v {
		if i > 0 {
			dst = append(dst, ',', ' ')
		}
		dst = strconv.AppendInt(dst, int64(x), 10)
	}
	return append(dst, ']'), nil
}

var _ Tag = NewLongArrayTag(nil)

type LongArrayTag []int64

// NewLongArrayTag returns a TAG_Long_Array value.
func NewLongArrayTag(x []int64) LongArrayTag {
	return LongArrayTag(x)
}

func (v LongArrayTag) V() any {
	return []int64(v)
}

func (v LongArrayTag) Type() Type {
	return TypeLongArray
}

func (v LongArrayTag) String() string {
	t, _ := v.MarshalJSON()
	return string(t)
}

func (v LongArrayTag) MarshalJSON() ([]byte, error) {
	dst := []byte{'['}
	for i, x := range v {
		if i > 0 {
			dst = append(dst, ',', ' ')
		}
		dst = strconv.AppendInt(dst, x, 10)
	}
	return append(dst, ']'), nil
}
