package nbt

import "github.com/cockroachdb/errors"

// Tag is a single typed node of an NBT tree.
type Tag interface {
	// V returns the Go value held by the tag.
	V() any

	// Type returns the tag's variant.
	Type() Type

	// String returns a human-readable representation of the tag. It is meant
	// for debugging, not for the wire.
	String() string

	MarshalJSON() ([]byte, error)
}

func AsBool(v Tag) bool {
	return v.V().(int8) != 0
}

func AsInt8(v Tag) int8 {
	return v.V().(int8)
}

func AsInt16(v Tag) int16 {
	return v.V().(int16)
}

func AsInt32(v Tag) int32 {
	return v.V().(int32)
}

func AsInt64(v Tag) int64 {
	return v.V().(int64)
}

func AsFloat32(v Tag) float32 {
	return v.V().(float32)
}

func AsFloat64(v Tag) float64 {
	return v.V().(float64)
}

func AsString(v Tag) string {
	return v.V().(string)
}

func AsByteSlice(v Tag) []byte {
	return v.V().([]byte)
}

func AsList(v Tag) ListTag {
	return v.(ListTag)
}

func AsCompound(v Tag) *CompoundTag {
	return v.(*CompoundTag)
}

// NewValue creates a tag whose type is inferred from x.
func NewValue(x any) (Tag, error) {
	switch v := x.(type) {
	case Tag:
		return v, nil
	case bool:
		if v {
			return NewByteTag(1), nil
		}
		return NewByteTag(0), nil
	case int8:
		return NewByteTag(v), nil
	case int16:
		return NewShortTag(v), nil
	case int32:
		return NewIntTag(v), nil
	case int:
		return NewLongTag(int64(v)), nil
	case int64:
		return NewLongTag(v), nil
	case float32:
		return NewFloatTag(v), nil
	case float64:
		return NewDoubleTag(v), nil
	case string:
		return NewStringTag(v), nil
	case []byte:
		return NewByteArrayTag(v), nil
	case []int32:
		return NewIntArrayTag(v), nil
	case []int64:
		return NewLongArrayTag(v), nil
	case []Tag:
		return NewListTag(v...), nil
	}

	return nil, errors.Errorf("unsupported type %T", x)
}
