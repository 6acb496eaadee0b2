package nbt

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// ReadCompoundTag reads a single uncompressed NBT document from r.
//
// The stream must start with the compound type id; anything else is an error
// wrapping ErrInvalidTypeID. On failure no partial tree is returned.
func ReadCompoundTag(r io.Reader) (*CompoundTag, error) {
	dr := &reader{r: r}

	id, err := dr.read1()
	if err != nil {
		return nil, err
	}
	if Type(id) != TypeCompound {
		return nil, errors.Wrapf(ErrInvalidTypeID, "document root has type id %d, want %d", id, TypeCompound)
	}

	name, err := dr.readString()
	if err != nil {
		return nil, err
	}

	ct, err := readCompound(dr, 0)
	if err != nil {
		return nil, err
	}
	ct.Name = name

	return ct, nil
}

// maxDepth bounds tag nesting on decode so a stream of nested list or
// compound headers cannot exhaust the stack.
const maxDepth = 512

// readTag reads the payload of a tag whose type id has already been read.
func readTag(r *reader, t Type, depth int) (Tag, error) {
	if depth > maxDepth {
		return nil, errors.Wrapf(ErrTooDeep, "more than %d levels", maxDepth)
	}

	switch t {
	case TypeByte:
		x, err := r.read1()
		if err != nil {
			return nil, err
		}
		return NewByteTag(int8(x)), nil
	case TypeShort:
		x, err := r.read2()
		if err != nil {
			return nil, err
		}
		return NewShortTag(int16(x)), nil
	case TypeInt:
		x, err := r.read4()
		if err != nil {
			return nil, err
		}
		return NewIntTag(int32(x)), nil
	case TypeLong:
		x, err := r.read8()
		if err != nil {
			return nil, err
		}
		return NewLongTag(int64(x)), nil
	case TypeFloat:
		x, err := r.read4()
		if err != nil {
			return nil, err
		}
		return NewFloatTag(math.Float32frombits(x)), nil
	case TypeDouble:
		x, err := r.read8()
		if err != nil {
			return nil, err
		}
		return NewDoubleTag(math.Float64frombits(x)), nil
	case TypeByteArray:
		x, err := r.readByteSlice()
		if err != nil {
			return nil, err
		}
		return NewByteArrayTag(x), nil
	case TypeString:
		x, err := r.readString()
		if err != nil {
			return nil, err
		}
		return NewStringTag(x), nil
	case TypeList:
		return readList(r, depth)
	case TypeCompound:
		return readCompound(r, depth)
	case TypeIntArray:
		x, err := readIntSlice[int32](r, 4)
		if err != nil {
			return nil, err
		}
		return NewIntArrayTag(x), nil
	case TypeLongArray:
		x, err := readIntSlice[int64](r, 8)
		if err != nil {
			return nil, err
		}
		return NewLongArrayTag(x), nil
	}

	return nil, errors.Wrapf(ErrInvalidTypeID, "type id %d", t)
}

// readList reads the element type id, the element count, then that many
// payload-only elements. A count of zero yields an empty list whatever the
// element type id; the end type id with a non-zero count is an error.
func readList(r *reader, depth int) (Tag, error) {
	id, err := r.read1()
	if err != nil {
		return nil, err
	}

	n, err := r.read4()
	if err != nil {
		return nil, err
	}

	et := Type(id)
	if et == TypeEnd {
		if n != 0 {
			return nil, errors.Wrapf(ErrInvalidListType, "end element type with %d elements", n)
		}
		return NewListTag(), nil
	}
	if !et.valid() {
		return nil, errors.Wrapf(ErrInvalidTypeID, "list element type id %d", id)
	}

	l := make(ListTag, 0, prealloc(n, maxPrealloc))
	for i := uint32(0); i < n; i++ {
		e, err := readTag(r, et, depth+1)
		if err != nil {
			return nil, err
		}
		l = append(l, e)
	}

	return l, nil
}

// readCompound reads (type id, name, payload) triples until the end sentinel.
// A duplicate key overwrites the earlier value in place, keeping the position
// of the first occurrence.
func readCompound(r *reader, depth int) (*CompoundTag, error) {
	ct := NewCompoundTag()

	for {
		id, err := r.read1()
		if err != nil {
			return nil, err
		}
		if Type(id) == TypeEnd {
			return ct, nil
		}
		if !Type(id).valid() {
			return nil, errors.Wrapf(ErrInvalidTypeID, "type id %d in compound", id)
		}

		name, err := r.readString()
		if err != nil {
			return nil, err
		}

		v, err := readTag(r, Type(id), depth+1)
		if err != nil {
			return nil, err
		}

		ct.Set(name, v)
	}
}
