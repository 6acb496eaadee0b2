package nbt

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// WriteCompoundTag writes ct to w as a single uncompressed NBT document:
// the compound type id, the document name, then the compound body.
//
// Any write failure is returned immediately; bytes already written are not
// rolled back, so the caller should discard the destination on error.
func WriteCompoundTag(w io.Writer, ct *CompoundTag) error {
	ew := &writer{w: w}

	if err := ew.write1(uint8(TypeCompound)); err != nil {
		return err
	}
	if err := ew.writeString(ct.Name); err != nil {
		return err
	}

	return writeTag(ew, ct)
}

// writeTag writes only the payload of v. The caller has already written the
// type id and, for compound members, the name.
func writeTag(w *writer, v Tag) error {
	switch v := v.(type) {
	case ByteTag:
		return w.write1(uint8(v))
	case ShortTag:
		return w.write2(uint16(v))
	case IntTag:
		return w.write4(uint32(v))
	case LongTag:
		return w.write8(uint64(v))
	case FloatTag:
		return w.write4(math.Float32bits(float32(v)))
	case DoubleTag:
		return w.write8(math.Float64bits(float64(v)))
	case ByteArrayTag:
		if err := w.write4(uint32(len(v))); err != nil {
			return err
		}
		_, err := w.w.Write(v)
		return err
	case StringTag:
		return w.writeString(string(v))
	case ListTag:
		return writeList(w, v)
	case *CompoundTag:
		return writeCompound(w, v)
	case IntArrayTag:
		return writeIntSlice(w, v, 4)
	case LongArrayTag:
		return writeIntSlice(w, v, 8)
	}

	return errors.Errorf("unsupported tag %T", v)
}

// writeList writes the element type id (0 for an empty list), the element
// count, then each element's payload back to back. Mixed lists are rejected
// before anything is written.
func writeList(w *writer, l ListTag) error {
	et := l.ElementType()
	for _, e := range l {
		if e.Type() != et {
			return errors.Wrapf(ErrHeterogeneousList, "list of %s contains a %s", et, e.Type())
		}
	}

	if err := w.write1(uint8(et)); err != nil {
		return err
	}
	if err := w.write4(uint32(len(l))); err != nil {
		return err
	}

	for _, e := range l {
		if err := writeTag(w, e); err != nil {
			return err
		}
	}

	return nil
}

// writeCompound writes each entry as type id, name, payload, in insertion
// order, then the end sentinel. An empty compound is just the sentinel.
func writeCompound(w *writer, ct *CompoundTag) error {
	err := ct.Iterate(func(name string, v Tag) error {
		if err := w.write1(uint8(v.Type())); err != nil {
			return err
		}
		if err := w.writeString(name); err != nil {
			return err
		}
		return writeTag(w, v)
	})
	if err != nil {
		return err
	}

	return w.write1(uint8(TypeEnd))
}
