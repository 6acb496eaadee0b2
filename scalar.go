package nbt

import "strconv"

var _ Tag = NewByteTag(0)

type ByteTag int8

// NewByteTag returns a TAG_Byte value.
func NewByteTag(x int8) ByteTag {
	return ByteTag(x)
}

func (v ByteTag) V() any {
	return int8(v)
}

func (v ByteTag) Type() Type {
	return TypeByte
}

func (v ByteTag) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v ByteTag) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

var _ Tag = NewShortTag(0)

type ShortTag int16

// NewShortTag returns a TAG_Short value.
func NewShortTag(x int16) ShortTag {
	return ShortTag(x)
}

func (v ShortTag) V() any {
	return int16(v)
}

func (v ShortTag) Type() Type {
	return TypeShort
}

func (v ShortTag) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v ShortTag) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

var _ Tag = NewIntTag(0)

type IntTag int32

// NewIntTag returns a TAG_Int value.
func NewIntTag(x int32) IntTag {
	return IntTag(x)
}

func (v IntTag) V() any {
	return int32(v)
}

func (v IntTag) Type() Type {
	return TypeInt
}

func (v IntTag) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v IntTag) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

var _ Tag = NewLongTag(0)

type LongTag int64

// NewLongTag returns a TAG_Long value.
func NewLongTag(x int64) LongTag {
	return LongTag(x)
}

func (v LongTag) V() any {
	return int64(v)
}

func (v LongTag) Type() Type {
	return TypeLong
}

func (v LongTag) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v LongTag) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

var _ Tag = NewFloatTag(0)

type FloatTag float32

// NewFloatTag returns a TAG_Float value.
func NewFloatTag(x float32) FloatTag {
	return FloatTag(x)
}

func (v FloatTag) V() any {
	return float32(v)
}

func (v FloatTag) Type() Type {
	return TypeFloat
}

func (v FloatTag) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (v FloatTag) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

var _ Tag = NewDoubleTag(0)

type DoubleTag float64

// NewDoubleTag returns a TAG_Double value.
func NewDoubleTag(x float64) DoubleTag {
	return DoubleTag(x)
}

func (v DoubleTag) V() any {
	return float64(v)
}

func (v DoubleTag) Type() Type {
	return TypeDouble
}

func (v DoubleTag) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v DoubleTag) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}
